// Command bpost calls the Shipping Manager API from the command line.
//
//	bpost --config bpost.yaml fetch-order REF1
//	bpost modify-status REF1 cancelled
//	bpost labels --format A_4 --output 'labels/%Y%m%d-{barcode}.pdf' 3232...
package main

import (
	"os"

	bpost "github.com/bpost/shm-go"
	"github.com/bpost/shm-go/config"
)

func main() {
	if err := newRootCommand(os.Stdout, clientFromConfig).Execute(); err != nil {
		os.Exit(1)
	}
}

func clientFromConfig(path string) (*bpost.Client, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return bpost.NewFromConfig(cfg)
}
