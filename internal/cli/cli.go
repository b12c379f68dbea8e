// Package cli validates the command line and turns it into a config.Config.
// Validation failures come back as *ExitError so main decides how to exit.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"hstin/csvgrid/internal/config"
)

const usageLine = "Usage: %s [-verbose] <csv file> <lon_west> <lon_east> <lat_south> <lat_north> <d_lon> <d_lat> <output_image_path>\n"

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// ErrHelp is returned when usage was requested explicitly.
var ErrHelp = errors.New("help requested")

// Parse validates args (without the program name). Usage text is written
// to output on any invalid invocation.
func Parse(name string, args []string, output io.Writer) (*config.Config, error) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprintf(output, "CSV Grid Drawer\n\n")
		fmt.Fprintf(output, usageLine, name)
		fmt.Fprintf(output, "\nOptions:\n")
		flagSet.PrintDefaults()
		fmt.Fprintf(output, "\nExample:\n")
		fmt.Fprintf(output, "  %s data.csv 0 1 0 1 0.5 0.5 out.png\n", name)
	}

	verbose := flagSet.Bool("verbose", false, "Show debug logging")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	pos := flagSet.Args()
	if len(pos) != 8 {
		flagSet.Usage()
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("expected 8 arguments, got %d", len(pos))}
	}

	names := [6]string{"lon_west", "lon_east", "lat_south", "lat_north", "d_lon", "d_lat"}
	var vals [6]float64
	for i, n := range names {
		v, err := strconv.ParseFloat(pos[i+1], 64)
		if err != nil {
			return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s %q", n, pos[i+1])}
		}
		vals[i] = v
	}

	cfg := &config.Config{
		InputFile:  pos[0],
		OutputFile: pos[7],
		Grid: config.GridSpec{
			LonWest:  vals[0],
			LonEast:  vals[1],
			LatSouth: vals[2],
			LatNorth: vals[3],
			DLon:     vals[4],
			DLat:     vals[5],
		},
		Verbose: *verbose,
	}

	if err := cfg.Grid.Validate(); err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, nil
}
