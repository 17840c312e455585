package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/venicegeo/landsat-stac-gen/antimeridian"
	"github.com/venicegeo/landsat-stac-gen/model"
	"github.com/venicegeo/landsat-stac-gen/stac"
	"github.com/venicegeo/landsat-stac-gen/util"
	cli "gopkg.in/urfave/cli.v1"
)

var itemFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene",
		Usage: "The scene product identifier",
	},
	cli.StringFlag{
		Name:  "scene-url",
		Usage: "The base URL of the scene's asset folder",
	},
	cli.StringFlag{
		Name:  "strategy",
		Usage: "The antimeridian strategy (NORMALIZE or SPLIT); overrides ANTIMERIDIAN_STRATEGY",
	},
	cli.StringFlag{
		Name:  "precision",
		Usage: "The number of decimal digits kept on output coordinates",
	},
	cli.StringFlag{
		Name:  "acquired",
		Usage: "The scene acquisition datetime",
	},
	cli.StringFlag{
		Name:  "cloud-cover",
		Usage: "The scene cloud cover, as a percentage (0-100)",
	},
}

// itemAction generates one STAC item and prints it to stdout
func itemAction(c *cli.Context) {
	sceneID := c.String("scene")
	if sceneID == "" {
		sceneID = c.Args().First()
	}
	if sceneID == "" {
		log.Fatal("No scene ID given; use --scene or a positional argument.")
	}

	ctx := &stac.Context{USGSStacAPIURL: util.GetUSGSStacAPIURL()}

	options, advisories, err := stac.OptionsFromEnvironment(ctx)
	if err != nil {
		log.Fatal("Invalid antimeridian strategy configuration: ", err)
	}
	for _, advisory := range advisories {
		util.LogAlert(ctx, advisory.Message)
	}

	if c.String("strategy") != "" {
		strategy, strategyAdvisories, err := antimeridian.ParseStrategy(c.String("strategy"))
		if err != nil {
			log.Fatal("Invalid strategy: ", err)
		}
		for _, advisory := range strategyAdvisories {
			util.LogAlert(ctx, advisory.Message)
		}
		options.Strategy = strategy
	}
	if c.String("precision") != "" {
		precision, err := strconv.Atoi(c.String("precision"))
		if err != nil || precision < 0 {
			log.Fatal("Invalid precision: ", c.String("precision"))
		}
		options.Precision = precision
	}

	meta := stac.SceneMetadata{ID: sceneID, URL: c.String("scene-url")}
	if c.String("acquired") != "" {
		if meta.AcquiredDate, err = model.ParseSceneTime(c.String("acquired")); err != nil {
			log.Fatal("Invalid acquired date: ", err)
		}
	}
	if c.String("cloud-cover") != "" {
		if meta.CloudCover, err = strconv.ParseFloat(c.String("cloud-cover"), 64); err != nil {
			log.Fatal("Invalid cloud cover: ", err)
		}
	}

	feature, _, err := stac.CreateItem(ctx, meta, options)
	if err != nil {
		log.Fatal("Error generating STAC item: ", err)
	}

	fmt.Println(feature.String())
}
