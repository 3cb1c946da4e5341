package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/db"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/export"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/repository"
)

func newExportCmd() *cobra.Command {
	var (
		layoutName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the saved books as CSV",
		Long: `Write the saved books as CSV using the same layouts as the HTTP
export endpoints. Without --out the CSV goes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := export.LayoutByName(layoutName, cfg.ReportDelimiter)
			if err != nil {
				return err
			}

			database, err := db.ConnectWithRetry(cfg)
			if err != nil {
				return err
			}

			books, err := repository.NewGormBookRepository(database).List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list books: %w", err)
			}

			var buf bytes.Buffer
			if err := export.Write(&buf, books, layout); err != nil {
				if errors.Is(err, export.ErrNoRecords) {
					warn("no books saved, nothing to export")
					return nil
				}
				return err
			}

			if outPath == "" || outPath == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			ok("wrote %d books to %s", len(books), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&layoutName, "layout", "collection", "CSV layout: collection or report")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	return cmd
}
