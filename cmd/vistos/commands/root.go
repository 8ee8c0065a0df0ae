package commands

import (
	"context"
	"fmt"
	"os"

	"vistos-backend/lib/bgmap"
	"vistos-backend/lib/configutil"
	"vistos-backend/lib/memberstore"
	"vistos-backend/lib/scrapers/bioguide"
	"vistos-backend/lib/scrapers/govinfo"
	"vistos-backend/services/vistos"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vistos",
	Short: "vistos is a CLI for retrieving US Congress member data.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type Config struct {
	Bioguide struct {
		BaseUrl string `json:"base_url"`
	} `json:"bioguide"`
	GovInfo struct {
		BaseUrl string `json:"base_url"`
		ApiKey  string `json:"api_key"`
	} `json:"govinfo"`
	// CachePath points at the sqlite member cache; empty disables it.
	CachePath string `json:"cache_path"`
	// BgmapPath points at the pregenerated roster index; empty disables it.
	BgmapPath string `json:"bgmap_path"`
}

func readConfig() (Config, error) {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if os.IsNotExist(err) {
		// no config file just means public endpoints and no caching
		return Config{}, nil
	}
	return config, err
}

func createService(ctx context.Context) (vistos.Service, func(), error) {
	noop := func() {}

	config, err := readConfig()
	if err != nil {
		return vistos.Service{}, noop, err
	}

	bioguideClient, err := bioguide.NewClient(ctx, bioguide.ClientOptions{
		BaseUrl: config.Bioguide.BaseUrl,
	})
	if err != nil {
		return vistos.Service{}, noop, err
	}

	opts := vistos.Options{Bioguide: bioguideClient}

	if config.GovInfo.ApiKey != "" {
		opts.GovInfo, err = govinfo.NewClient(ctx, govinfo.ClientOptions{
			BaseUrl: config.GovInfo.BaseUrl,
			ApiKey:  config.GovInfo.ApiKey,
		})
		if err != nil {
			return vistos.Service{}, noop, err
		}
	}

	cleanup := noop
	if config.CachePath != "" {
		store, err := memberstore.Open(config.CachePath)
		if err != nil {
			return vistos.Service{}, noop, err
		}
		opts.Store = &store
		cleanup = func() {
			store.Close()
		}
	}

	if config.BgmapPath != "" {
		index, err := bgmap.Open(config.BgmapPath)
		if err != nil {
			cleanup()
			return vistos.Service{}, noop, err
		}
		opts.Index = index
	}

	return vistos.NewService(opts), cleanup, nil
}
