package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/peridot-go/internal/core/config"
	"github.com/nightconcept/peridot-go/internal/core/downloader"
	"github.com/nightconcept/peridot-go/internal/core/hasher"
	"github.com/nightconcept/peridot-go/internal/core/installer"
	"github.com/nightconcept/peridot-go/internal/core/library"
	"github.com/nightconcept/peridot-go/internal/core/lockfile"
	"github.com/nightconcept/peridot-go/internal/core/platform"
	"github.com/nightconcept/peridot-go/internal/core/sandbox"
	"github.com/nightconcept/peridot-go/internal/core/source"
	"github.com/nightconcept/peridot-go/internal/core/spec"
	"github.com/nightconcept/peridot-go/internal/core/xcodeproj"
)

// NewInstallCommand creates the cli.Command for "install".
func NewInstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Installs the pods declared in podfile.toml and generates the Pods project",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project-directory",
				Aliases: []string{"C"},
				Usage:   "Directory containing podfile.toml",
				Value:   ".",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Action: installAction,
	}
}

func installAction(c *cli.Context) error {
	verbose := c.Bool("verbose")
	projectDir := c.String("project-directory")

	pf, err := config.LoadPodfile(projectDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cli.Exit("Error: podfile.toml not found. Please run 'prd init' first.", 1)
		}
		return cli.Exit(fmt.Sprintf("Error loading podfile.toml: %v", err), 1)
	}
	if verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded podfile.toml (project: %s, platform: %s)\n", pf.Project.Name, pf.Project.Platform)
	}

	lf, err := lockfile.Load(projectDir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading %s: %v", lockfile.LockfileName, err), 1)
	}

	plat, err := platform.New(pf.Project.Platform, pf.Project.DeploymentTarget)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error resolving project directory: %v", err), 1)
	}
	sb := sandbox.New(filepath.Join(absDir, "Pods"))
	proj := xcodeproj.New(sb.Root)

	specs, err := loadSpecs(pf, absDir, verbose)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	inst := &installer.Installer{
		Project:                 proj,
		GenerateBridgeSupport:   pf.Options.GenerateBridgeSupport,
		SetARCCompatibilityFlag: pf.Options.SetARCCompatibilityFlag,
		PodsRoot:                pf.Options.PodsRoot,
	}

	definitionNames := make([]string, 0, len(pf.Targets))
	for name := range pf.Targets {
		definitionNames = append(definitionNames, name)
	}
	sort.Strings(definitionNames)

	installedTargets := 0
	for _, defName := range definitionNames {
		def := pf.Targets[defName]
		lib, err := buildLibrary(pf, defName, def, plat, sb, specs)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error preparing target %s: %v", defName, err), 1)
		}
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Installing target %s (%d pods)\n", lib.Label, len(lib.FileAccessors))
		}

		result, err := inst.Install(lib)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error installing %s: %v", lib.Label, err), 1)
		}

		artifacts, err := fingerprintArtifacts(proj, result.WrittenArtifacts)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error fingerprinting artifacts for %s: %v", lib.Label, err), 1)
		}
		lf.RecordTarget(lib.Label, artifacts)
		if verbose {
			for _, path := range result.WrittenArtifacts {
				_, _ = fmt.Fprintf(os.Stdout, "  generated %s\n", path)
			}
		}
		installedTargets++
	}

	for name, pod := range pf.Pods {
		s, ok := specs[name]
		if !ok {
			continue
		}
		lf.RecordPod(name, s.Version, pod.Spec, nil)
	}

	if err := proj.Save(sb.ManifestPath()); err != nil {
		return cli.Exit(fmt.Sprintf("Error writing project document: %v", err), 1)
	}
	lf.ApiVersion = lockfile.APIVersion
	if err := lockfile.Save(projectDir, lf); err != nil {
		return cli.Exit(fmt.Sprintf("Error saving %s: %v", lockfile.LockfileName, err), 1)
	}

	success := color.New(color.FgGreen).SprintFunc()
	_, _ = fmt.Fprintf(os.Stdout, "%s Installed %d target(s) from %d pod(s).\n", success("✓"), installedTargets, len(specs))
	return nil
}

// loadSpecs resolves and parses the specification of every pod named in the
// podfile. Local paths resolve against the project directory; remote sources
// are fetched.
func loadSpecs(pf *config.Podfile, projectDir string, verbose bool) (map[string]*spec.Specification, error) {
	specs := make(map[string]*spec.Specification, len(pf.Pods))
	names := make([]string, 0, len(pf.Pods))
	for name := range pf.Pods {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pod := pf.Pods[name]
		if pod.Spec == "" {
			return nil, fmt.Errorf("pod %q declares no spec source", name)
		}

		var s *spec.Specification
		var err error
		if strings.HasPrefix(pod.Spec, "github:") || strings.HasPrefix(pod.Spec, "http://") || strings.HasPrefix(pod.Spec, "https://") {
			parsed, perr := source.Parse(pod.Spec)
			if perr != nil {
				return nil, perr
			}
			if verbose {
				_, _ = fmt.Fprintf(os.Stdout, "Fetching spec for %s from %s\n", name, parsed.RawURL)
			}
			content, ferr := downloader.Fetch(parsed.RawURL)
			if ferr != nil {
				return nil, ferr
			}
			s, err = spec.Load(content)
		} else {
			s, err = spec.LoadFile(filepath.Join(projectDir, pod.Spec))
		}
		if err != nil {
			return nil, fmt.Errorf("pod %q: %w", name, err)
		}
		specs[name] = s
	}
	return specs, nil
}

// buildLibrary assembles the resolved build unit for one target definition.
func buildLibrary(pf *config.Podfile, defName string, def config.TargetDefinition, plat platform.Platform, sb *sandbox.Sandbox, specs map[string]*spec.Specification) (*library.Library, error) {
	lib := library.New(config.TargetLabel(defName), plat, sb)
	lib.InhibitWarnings = pf.Options.InhibitAllWarnings
	for name, baseType := range pf.Configurations {
		lib.CustomConfigurations[name] = baseType
	}

	for _, podName := range def.Pods {
		s, ok := specs[podName]
		if !ok {
			return nil, fmt.Errorf("pod %q is not declared in the [pods] table", podName)
		}
		consumer := s.Consumer(plat.Name)
		podDir := sb.PodDir(s.Name)
		lib.AddFileAccessor(&library.FileAccessor{
			Consumer:      consumer,
			SourceFiles:   absolutePaths(podDir, consumer.SourceFiles),
			HeaderFiles:   absolutePaths(podDir, consumer.PublicHeaders),
			ResourceFiles: absolutePaths(podDir, consumer.Resources),
		})
	}
	return lib, nil
}

func absolutePaths(root string, relative []string) []string {
	out := make([]string, 0, len(relative))
	for _, rel := range relative {
		out = append(out, filepath.Join(root, rel))
	}
	return out
}

// fingerprintArtifacts maps every written artifact to its content hash,
// keyed by sandbox-relative path.
func fingerprintArtifacts(proj *xcodeproj.Project, paths []string) (map[string]string, error) {
	artifacts := make(map[string]string, len(paths))
	for _, path := range paths {
		rel, err := proj.RelativePath(path)
		if err != nil {
			return nil, err
		}
		hash, err := hasher.FingerprintFile(path)
		if err != nil {
			return nil, err
		}
		artifacts[rel] = hash
	}
	return artifacts, nil
}
