// Package box3d lays out trees of 3D boxes.
//
// Users import this single package for the public API: the engine and its
// nodes, size values, geometry types, the ready-made strategies and
// adapters, and YAML scene loading.
//
// A minimal row of three boxes sharing 400 units of width:
//
//	e := box3d.NewEngine()
//	row := e.NodeFor("row")
//	row.Apply(box3d.WithFixedSize(400, 10, 1), box3d.WithStrategy(box3d.NewFlexible()))
//	for i, grow := range []float64{1, 1, 2} {
//		child := e.NodeFor(i)
//		child.Apply(box3d.WithFixedSize(0, 10, 1), box3d.WithWidth(box3d.Fill(grow)))
//		row.AddChild(child)
//	}
//	e.Update()
//
// After Update every node's Result holds its local target position,
// rotation, scale and size.
package box3d
