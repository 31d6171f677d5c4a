package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vpath-go/vpath"
	"github.com/vpath-go/vpath/aferofs"
	"github.com/vpath-go/vpath/billyfs"
	"github.com/vpath-go/vpath/syntax"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vpath",
	Short: "Inspect and manipulate paths over pluggable filesystem backends",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// newBackend builds the filesystem selected by the persistent flags.
func newBackend(cmd *cobra.Command) (vpath.Backend, error) {
	name, _ := cmd.Flags().GetString("backend")
	root, _ := cmd.Flags().GetString("root")

	log.Debug().Str("backend", name).Str("root", root).Msg("selecting backend")

	switch name {
	case "billy":
		if root != "" {
			return billyfs.NewLocalAt(root), nil
		}
		return billyfs.NewLocal(), nil
	case "afero":
		if root != "" {
			return aferofs.NewOSAt(root), nil
		}
		return aferofs.NewOS(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want billy or afero)", name)
	}
}

func newPath(cmd *cobra.Command, name string) (*vpath.RWPath, error) {
	backend, err := newBackend(cmd)
	if err != nil {
		return nil, err
	}
	return vpath.NewRWPath(backend, syntax.Posix, name), nil
}

func flagFlavor(cmd *cobra.Command) (syntax.Flavor, error) {
	name, _ := cmd.Flags().GetString("flavor")
	switch name {
	case "posix":
		return syntax.Posix, nil
	case "windows":
		return syntax.Windows, nil
	default:
		return nil, fmt.Errorf("unknown flavor %q (want posix or windows)", name)
	}
}

// ls command
var lsCmd = &cobra.Command{
	Use:   "ls PATH",
	Short: "List directory children",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPath(cmd, args[0])
		if err != nil {
			return err
		}

		children, err := p.IterDir()
		if err != nil {
			return err
		}
		for _, child := range children {
			fmt.Println(child.Name())
		}
		return nil
	},
}

// tree command
var treeCmd = &cobra.Command{
	Use:   "tree PATH",
	Short: "Walk a directory tree top-down",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		follow, _ := cmd.Flags().GetBool("follow-symlinks")

		p, err := newPath(cmd, args[0])
		if err != nil {
			return err
		}

		var opts []vpath.WalkOption
		if follow {
			opts = append(opts, vpath.WalkFollowSymlinks())
		}

		for entry, err := range p.Walk(opts...) {
			if err != nil {
				log.Warn().Err(err).Msg("walk error")
				continue
			}
			fmt.Printf("%s/\n", entry.Dir)
			for _, name := range entry.Files {
				fmt.Printf("  %s\n", name)
			}
		}
		return nil
	},
}

// glob command
var globCmd = &cobra.Command{
	Use:   "glob PATH PATTERN",
	Short: "Expand a glob pattern below a directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPath(cmd, args[0])
		if err != nil {
			return err
		}

		matches, err := p.Glob(args[1])
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Println(m)
		}
		return nil
	},
}

// cat command
var catCmd = &cobra.Command{
	Use:   "cat PATH",
	Short: "Print file content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPath(cmd, args[0])
		if err != nil {
			return err
		}

		r, err := p.Open()
		if err != nil {
			return err
		}
		defer r.Close()

		if _, err := io.Copy(os.Stdout, r); err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		return nil
	},
}

// write command
var writeCmd = &cobra.Command{
	Use:   "write PATH",
	Short: "Write stdin to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPath(cmd, args[0])
		if err != nil {
			return err
		}

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if err := p.WriteBytes(data); err != nil {
			return err
		}

		log.Debug().Str("path", p.String()).Int("bytes", len(data)).Msg("wrote file")
		return nil
	},
}

// mkdir command
var mkdirCmd = &cobra.Command{
	Use:   "mkdir PATH",
	Short: "Create a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parents, _ := cmd.Flags().GetBool("parents")

		p, err := newPath(cmd, args[0])
		if err != nil {
			return err
		}

		if parents {
			return p.MkdirAll()
		}
		return p.Mkdir()
	},
}

// stat command
var statCmd = &cobra.Command{
	Use:   "stat PATH",
	Short: "Show path status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPath(cmd, args[0])
		if err != nil {
			return err
		}

		info := p.Info()
		exists, err := info.Exists(true)
		if err != nil {
			return err
		}
		if !exists {
			fmt.Printf("%s: does not exist\n", p)
			return nil
		}

		isDir, _ := info.IsDir(true)
		isFile, _ := info.IsFile(true)
		isLink, _ := info.IsSymlink()
		fmt.Printf("%s: dir=%v file=%v symlink=%v\n", p, isDir, isFile, isLink)
		return nil
	},
}

// parse command
var parseCmd = &cobra.Command{
	Use:   "parse PATH",
	Short: "Decompose a path without touching any filesystem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flavor, err := flagFlavor(cmd)
		if err != nil {
			return err
		}

		p := vpath.New(flavor, args[0])
		fmt.Printf("string:   %s\n", p)
		fmt.Printf("root:     %q\n", p.Root())
		fmt.Printf("parts:    %s\n", strings.Join(p.Parts(), " | "))
		fmt.Printf("name:     %s\n", p.Name())
		fmt.Printf("suffix:   %s\n", p.Suffix())
		fmt.Printf("stem:     %s\n", p.Stem())
		fmt.Printf("parent:   %s\n", p.Parent())
		fmt.Printf("absolute: %v\n", p.IsAbsolute())
		return nil
	},
}

// join command
var joinCmd = &cobra.Command{
	Use:   "join PATH FRAGMENT...",
	Short: "Join path fragments",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		flavor, err := flagFlavor(cmd)
		if err != nil {
			return err
		}

		fmt.Println(vpath.New(flavor, args[0]).Join(args[1:]...))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("backend", "billy", "Filesystem backend (billy or afero)")
	rootCmd.PersistentFlags().String("root", "", "Scope the backend to this directory")

	treeCmd.Flags().Bool("follow-symlinks", false, "Descend into symlinked directories")
	mkdirCmd.Flags().BoolP("parents", "p", false, "Create missing parents, ignore existing")
	parseCmd.Flags().String("flavor", "posix", "Path syntax (posix or windows)")
	joinCmd.Flags().String("flavor", "posix", "Path syntax (posix or windows)")

	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(globCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(joinCmd)
}
