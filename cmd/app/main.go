package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/sprintplanner/internal/config"
	"github.com/akyairhashvil/sprintplanner/internal/sprint"
	"github.com/akyairhashvil/sprintplanner/internal/storage"
	"github.com/akyairhashvil/sprintplanner/internal/tui"
	"github.com/akyairhashvil/sprintplanner/internal/util"
)

func main() {
	dbRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dbRoot, 0o755)
	dbPath := filepath.Join(dbRoot, config.DBFileName)

	db, err := storage.Open(dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "export":
			runExport(ctx, db, os.Args[2:])
			return
		case "import":
			runImport(ctx, db, os.Args[2:])
			return
		default:
			fmt.Printf("Unknown command %q. Commands: export, import.\n", os.Args[1])
			os.Exit(1)
		}
	}

	store := sprint.NewStore(ctx, db)
	model := tui.NewMainModel(ctx, store)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// runExport writes all records to a JSON file. With -encrypt the payload is
// sealed with a prompted passphrase.
func runExport(ctx context.Context, db *storage.DB, args []string) {
	opts := storage.ExportOptions{}
	out := ""
	for _, arg := range args {
		switch {
		case arg == "-encrypt":
			opts.EncryptOutput = true
		case out == "":
			out = arg
		}
	}
	if out == "" {
		out = fmt.Sprintf("%s_export.json", config.AppName)
	}

	if opts.EncryptOutput {
		pass, err := promptForKey("Export passphrase: ")
		util.MustSucceed("read passphrase", err)
		if pass == "" {
			fmt.Println("Empty passphrase. Exiting.")
			os.Exit(1)
		}
		opts.Passphrase = pass
	}

	payload, err := db.ExportVault(ctx, opts)
	util.MustSucceed("export", err)
	util.MustSucceed("write export", os.WriteFile(out, payload, 0o600))
	fmt.Printf("Exported to %s\n", out)
}

// runImport replaces the current records with the contents of an export
// file, prompting for a passphrase when the payload is encrypted.
func runImport(ctx context.Context, db *storage.DB, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: import <file>")
		os.Exit(1)
	}
	payload, err := os.ReadFile(args[0])
	util.MustSucceed("read import file", err)

	pass := ""
	if strings.Contains(string(payload), `"encrypted":true`) {
		pass, err = promptForKey("Import passphrase: ")
		util.MustSucceed("read passphrase", err)
	}
	util.MustSucceed("import", db.ImportVault(ctx, payload, pass))
	fmt.Println("Import complete.")
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
