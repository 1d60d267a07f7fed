package storage

// Row shapes shared by the backends when building the location tree.

type locationRow struct {
	ID      int
	Name    string
	Level   int // 1 continent .. 4 municipality
	Parent  int // 0 when root
	CoastID int
	Lat     float64
	Lon     float64
}

type beachRow struct {
	ID      int
	LocalID int // owning municipality
	Name    string
	CoastID int
	Lat     float64
	Lon     float64
}

// buildLocationTree assembles the hierarchical tree: locations linked by
// their parent id, beaches attached to their municipality.
func buildLocationTree(locations []locationRow, beaches []beachRow) []*LocationNode {
	nodes := make(map[int]*LocationNode, len(locations))
	for _, loc := range locations {
		nodes[loc.ID] = &LocationNode{
			ID:          loc.ID,
			Type:        "REGULAR_SPOT",
			Name:        loc.Name,
			ParentID:    loc.Parent,
			CoastID:     loc.CoastID,
			Coordinates: coords(loc.Lat, loc.Lon),
			Children:    []*LocationNode{},
		}
	}

	byMunicipality := make(map[int][]beachRow)
	for _, b := range beaches {
		byMunicipality[b.LocalID] = append(byMunicipality[b.LocalID], b)
	}

	for _, loc := range locations {
		if loc.Level != 4 {
			continue
		}
		node := nodes[loc.ID]
		for _, b := range byMunicipality[loc.ID] {
			node.Children = append(node.Children, &LocationNode{
				ID:            b.ID,
				Type:          "SURF_SPOT",
				Name:          b.Name,
				ParentID:      loc.ID,
				CoastID:       b.CoastID,
				SpotID:        b.ID,
				OceanicSpotID: b.CoastID,
				Coordinates:   coords(b.Lat, b.Lon),
				Children:      []*LocationNode{},
			})
		}
	}

	var roots []*LocationNode
	for _, loc := range locations {
		node := nodes[loc.ID]
		if loc.Parent != 0 {
			if parent, ok := nodes[loc.Parent]; ok {
				parent.Children = append(parent.Children, node)
			}
			continue
		}
		if loc.Level == 1 {
			roots = append(roots, node)
		}
	}
	return roots
}

// coords treats 0/0 as "no coordinates", matching what the producers load.
func coords(lat, lon float64) *Coordinates {
	if lat == 0 || lon == 0 {
		return nil
	}
	return &Coordinates{Lat: lat, Long: lon}
}
