package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/arbor/internal/config"
	"github.com/vango-dev/arbor/internal/errors"
	"github.com/vango-dev/arbor/internal/publish"
	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/manifest"
	"github.com/vango-dev/arbor/pkg/render"
	"github.com/vango-dev/arbor/pkg/tree"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		output string
		host   string
		title  string
		sets   []string
	)

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Render a manifest to HTML",
		Long: `Render a manifest to a complete HTML page.

The manifest is mounted, store assignments given with --set are applied
and the resulting document is written to stdout, a file or an S3 object.

With --host the manifest is mounted into the element of an existing HTML
page whose id is --render-target.

Examples:
  arbor render page.yaml
  arbor render page.yaml --set count=3 -o dist/index.html
  arbor render page.yaml --host shell.html --render-target app
  arbor render page.yaml -o s3://my-site/index.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd)
			if err != nil {
				return err
			}
			m, err := manifest.NewLoader(manifest.WithLogger(logger)).Load(args[0])
			if err != nil {
				return err
			}
			assignments, err := parseAssignments(sets)
			if err != nil {
				return err
			}

			page, err := renderManifest(m, cfg, host, title, assignments, tree.WithLogger(logger))
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(page)
				return err
			}
			p := publish.New(publish.Options{Region: cfg.Publish.Region, Endpoint: cfg.Publish.Endpoint})
			if err := p.Publish(cmd.Context(), output, page); err != nil {
				return err
			}
			success(cmd.ErrOrStderr(), "Wrote %s (%d bytes)", output, len(page))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination: a file path or s3://bucket/key (default stdout)")
	cmd.Flags().StringVar(&host, "host", "", "HTML page to mount into")
	cmd.Flags().StringVar(&title, "title", "", "Page title")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Store assignment name=value; value is a YAML scalar (repeatable)")
	cmd.Flags().Bool("render-marker-comments", false, "Render region markers as comments")
	cmd.Flags().String("render-target", config.DefaultTarget, "Id of the mount element in the host page")
	cmd.Flags().String("publish-region", "", "AWS region for s3:// outputs")
	cmd.Flags().String("publish-endpoint", "", "S3 endpoint override")

	return cmd
}

// assignment is one --set flag.
type assignment struct {
	name  string
	value any
}

// parseAssignments parses name=value pairs. Values are decoded as YAML so
// numbers and booleans keep their type.
func parseAssignments(sets []string) ([]assignment, error) {
	out := make([]assignment, 0, len(sets))
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, errors.New("E160").WithDetail("Got " + s + ".")
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, errors.New("E160").Wrap(err)
		}
		out = append(out, assignment{name: name, value: value})
	}
	return out, nil
}

// renderManifest mounts m, applies the assignments and returns the page.
func renderManifest(m *manifest.Manifest, cfg *config.Config, host, title string, sets []assignment, opts ...tree.Option) ([]byte, error) {
	var (
		doc    *dom.Document
		target *dom.Node
	)
	if host != "" {
		f, err := os.Open(host)
		if err != nil {
			return nil, errors.New("E161").Wrap(err)
		}
		defer f.Close()
		if doc, err = dom.Parse(f); err != nil {
			return nil, errors.New("E161").Wrap(err)
		}
		if target = doc.GetElementByID(cfg.Render.Target); target == nil {
			return nil, errors.New("E103").WithDetail("No element with id " + cfg.Render.Target + " in " + host + ".")
		}
	} else {
		doc = dom.NewDocument()
		target = doc.CreateElement("div")
		doc.Body().AppendChild(target)
	}

	session := tree.NewSession(doc, opts...)
	root := session.Mount(m.Description(), target)
	defer root.Unmount()

	for _, a := range sets {
		if err := m.Set(a.name, a.value); err != nil {
			return nil, err
		}
	}
	if err := session.Flush(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	r := render.NewRenderer(render.Config{MarkerComments: cfg.Render.MarkerComments})
	var err error
	if host != "" {
		err = r.RenderDocument(&buf, doc)
	} else {
		err = r.RenderPage(&buf, render.Page{Body: target, Title: title})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
