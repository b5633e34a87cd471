package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/toterm/internal/appconfig"
	"pkt.systems/toterm/internal/registry"
	"pkt.systems/toterm/internal/runner"
	"pkt.systems/toterm/schema"
)

// scriptsEnv is the shared state of the scripts subcommands. fs is
// swappable so tests can run against memory.
type scriptsEnv struct {
	cfgPath *string
	fs      afero.Fs
}

// open loads the registry. A read-only caller may pass tolerant to keep
// going with an empty collection after printing a warning; writers must not,
// since saving would overwrite the unreadable file.
func (e *scriptsEnv) open(cmd *cobra.Command, tolerant bool) (*registry.Store, error) {
	cfg, err := appconfig.Load(*e.cfgPath)
	if err != nil {
		return nil, err
	}
	store := registry.NewStoreWithLogger(e.fs, cfg.ScriptsPath(), pslog.Ctx(cmd.Context()))
	if err := store.Load(); err != nil {
		if !tolerant {
			return nil, err
		}
		printWarnings(cmd, []string{err.Error()})
	}
	return store, nil
}

func newScriptsCmd(cfgPath *string) *cobra.Command {
	env := &scriptsEnv{cfgPath: cfgPath, fs: afero.NewOsFs()}
	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "Manage registered scripts",
	}
	cmd.AddCommand(newScriptsListCmd(env))
	cmd.AddCommand(newScriptsAddCmd(env))
	cmd.AddCommand(newScriptsEditCmd(env))
	cmd.AddCommand(newScriptsRunCmd(env))
	return cmd
}

func newScriptsListCmd(env *scriptsEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scripts and whether their files exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.open(cmd, true)
			if err != nil {
				return err
			}
			store.RefreshStatuses()
			return writeScriptTable(cmd.OutOrStdout(), store.Scripts())
		},
	}
}

func writeScriptTable(out io.Writer, scripts []schema.Script) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tLANGUAGE\tSTATUS\tPATH\tDESCRIPTION")
	for _, s := range scripts {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.Language, s.Status, s.Path, s.Description)
	}
	return w.Flush()
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
	}
}

func newScriptsAddCmd(env *scriptsEnv) *cobra.Command {
	var lang string
	var description string
	cmd := &cobra.Command{
		Use:   "add <name> <path>",
		Short: "Register a script",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			language, err := schema.NormalizeLanguage(lang)
			if err != nil {
				return err
			}
			script := schema.NewScript(args[0], args[1], language, description)
			warnings, err := registry.Validate(env.fs, script)
			if err != nil {
				return err
			}
			printWarnings(cmd, warnings)
			store, err := env.open(cmd, false)
			if err != nil {
				return err
			}
			store.Append(script)
			if err := store.Save(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", script.Name)
			return err
		},
	}
	cmd.Flags().StringVarP(&lang, "language", "l", string(schema.LanguageJava), "script language ("+schema.LanguageNames()+")")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what the script does")
	return cmd
}

func newScriptsEditCmd(env *scriptsEnv) *cobra.Command {
	var name, path, lang, description string
	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit the first script with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.open(cmd, false)
			if err != nil {
				return err
			}
			current, ok := store.Find(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", schema.ErrScriptNotFound, args[0])
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				current.Name = name
			}
			if flags.Changed("path") {
				current.Path = path
			}
			if flags.Changed("description") {
				current.Description = description
			}
			if flags.Changed("language") {
				language, err := schema.NormalizeLanguage(lang)
				if err != nil {
					return err
				}
				current.Language = language
			}
			updated := schema.NewScript(current.Name, current.Path, current.Language, current.Description)
			warnings, err := registry.Validate(env.fs, updated)
			if err != nil {
				return err
			}
			printWarnings(cmd, warnings)
			store.Replace(args[0], updated)
			if err := store.Save(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", updated.Name)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new script name")
	cmd.Flags().StringVar(&path, "path", "", "new script path")
	cmd.Flags().StringVarP(&lang, "language", "l", "", "new script language ("+schema.LanguageNames()+")")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	return cmd
}

func newScriptsRunCmd(env *scriptsEnv) *cobra.Command {
	var java, node string
	cmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Run a script with its language runtime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.open(cmd, false)
			if err != nil {
				return err
			}
			script, ok := store.Find(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", schema.ErrScriptNotFound, args[0])
			}
			r := runner.New(env.fs, runner.Config{JavaBinary: java, NodeBinary: node})
			res, err := r.Run(cmd.Context(), script, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			status := fmt.Sprintf("%s exited with code %d", script.Name, res.ExitCode)
			if res.Signal != "" {
				status += " (" + strings.ToLower(res.Signal) + ")"
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), status)
			if res.ExitCode != 0 {
				return fmt.Errorf("%s", status)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&java, "java", "", "java binary (default \"java\")")
	cmd.Flags().StringVar(&node, "node", "", "node binary (default \"node\")")
	return cmd
}
