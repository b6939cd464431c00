package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"floorplan-sim/internal/common/logging"
	"floorplan-sim/internal/generator/door"
	"floorplan-sim/internal/generator/mapper"
	"floorplan-sim/internal/generator/models"
	"floorplan-sim/internal/generator/sdf"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type generateOptions struct {
	edgesPath  string
	scenePath  string
	configPath string
	kind       string
	world      string
	output     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "doorgen",
		Short:        "Generate simulation door models from floorplan doors",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build door models and write an SDF world",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.edgesPath, "edges", "", "YAML or JSON file with a list of door edges")
	cmd.Flags().StringVar(&opts.scenePath, "scene", "", "react-planner scene JSON")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "door constants YAML")
	cmd.Flags().StringVar(&opts.kind, "kind", "sliding", "door kind for edges without one (sliding, double_sliding)")
	cmd.Flags().StringVar(&opts.world, "world", "building", "world name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func runGenerate(stdout, stderr io.Writer, opts *generateOptions) error {
	level := log.InfoLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := logging.New(stderr, level)

	if opts.edgesPath == "" && opts.scenePath == "" {
		return fmt.Errorf("one of --edges or --scene is required")
	}

	cfg, err := door.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	kind, err := door.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	builder := mapper.NewBuilder(cfg, kind, logger)

	var edges []models.Edge
	if opts.edgesPath != "" {
		fileEdges, err := readEdges(opts.edgesPath)
		if err != nil {
			return err
		}
		edges = append(edges, fileEdges...)
	}
	if opts.scenePath != "" {
		sceneEdges, err := readSceneEdges(opts.scenePath)
		if err != nil {
			return err
		}
		edges = append(edges, sceneEdges...)
	}
	logger.Debug("edges loaded", "count", len(edges))

	doors, err := builder.Doors(edges)
	if err != nil {
		return err
	}

	out, err := sdf.Marshal(mapper.World(opts.world, doors))
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("world written", "path", opts.output, "doors", len(doors))
	return nil
}

// readEdges читает список проемов; .json декодируется как JSON, остальное как YAML.
func readEdges(path string) ([]models.Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edges: %w", err)
	}

	var edges []models.Edge
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &edges)
	} else {
		err = yaml.Unmarshal(data, &edges)
	}
	if err != nil {
		return nil, fmt.Errorf("parse edges %s: %w", path, err)
	}
	return edges, nil
}

func readSceneEdges(path string) ([]models.Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var scene models.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return mapper.Edges(&scene)
}
