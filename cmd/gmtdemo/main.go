// Command gmtdemo draws a small world map with the gmt binding.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gmtgo/gmt"
)

func main() {
	var (
		output      = flag.String("output", "demo.png", "output file")
		dpi         = flag.Int("dpi", 300, "raster resolution")
		transparent = flag.Bool("transparent", false, "transparent background (png only)")
		show        = flag.Bool("show", false, "open the result in an external viewer")
		verbose     = flag.Bool("verbose", false, "log engine calls")
	)
	flag.Parse()

	if *verbose {
		gmt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fig, err := gmt.New()
	if err != nil {
		log.Fatalf("Failed to create figure: %v", err)
	}
	defer fig.Close()

	if err := fig.Basemap(gmt.Options{"R": "0/360/-90/90", "J": "W15c", "B": "afg"}); err != nil {
		log.Fatalf("Failed to draw basemap: %v", err)
	}
	if err := fig.Coast(gmt.Options{"G": "tan", "S": "lightblue", "W": "thin"}); err != nil {
		log.Fatalf("Failed to draw coastlines: %v", err)
	}

	opts := []gmt.SaveOption{gmt.WithConvertOptions(gmt.Options{"E": *dpi})}
	if *transparent {
		opts = append(opts, gmt.Transparent())
	}
	if err := fig.Savefig(*output, opts...); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Figure saved to %s\n", *output)

	if *show {
		if _, err := fig.Show(gmt.External()); err != nil {
			log.Fatalf("Failed to open viewer: %v", err)
		}
	}
}
