// Package exporter writes the outputs of a run.
//
// FigureWriter stores rendered figures below the configured output
// directory. AgeRangeTable renders the youngest and oldest member of every
// party as a bordered text table for the terminal.
//
// Example usage:
//
//	writer := exporter.NewFigureWriter(paths, logger)
//	path, err := writer.WriteFigure(ctx, "parties", "png", canvas)
//
//	fmt.Println(exporter.AgeRangeHeading)
//	fmt.Println(exporter.AgeRangeTable(ranges))
package exporter
