// Package dataloader reads the three flat-file inputs of a report run: the
// legislature roster, the executive roster and the national population
// projection.
//
// Inputs are delimited text files. A path ending in .xlsx is read from the
// first worksheet instead, so a roster exported from a spreadsheet can be
// used as is.
//
// Every failure to read a file or a required column is fatal for the run
// and reported as an AppError of type LOAD; a birth cell that cannot be
// read as a year or a date is reported as PARSING with the file, row and
// column attached. Empty birth cells only skip the record.
package dataloader
