package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gtmdiff/internal/compare"
	"gtmdiff/internal/export"
	"gtmdiff/internal/snapshot"
)

var (
	diffAccount    string
	diffContainerA string
	diffContainerB string
	diffLabelA     string
	diffLabelB     string
	diffOutput     string
	diffFileA      string
	diffFileB      string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two containers and export the differences as CSV",
	Long: `Compare the entities of two containers field by field.

Sides come either from the Tag Manager API (--account with --container-a
and --container-b) or from snapshot files captured earlier with
'gtmdiff snapshot' (--file-a and --file-b).

Examples:
  # Live comparison of two containers in one account
  gtmdiff diff --account "Acme" --container-a "Web - Prod" --container-b "Web - Stage"

  # Offline comparison of saved snapshots
  gtmdiff diff --file-a prod.json.gz --file-b stage.json.gz --output diff.csv`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffAccount, "account", "", "Tag Manager account display name")
	diffCmd.Flags().StringVar(&diffContainerA, "container-a", "", "first container name")
	diffCmd.Flags().StringVar(&diffContainerB, "container-b", "", "second container name")
	diffCmd.Flags().StringVar(&diffLabelA, "label-a", "", "report label for the first side")
	diffCmd.Flags().StringVar(&diffLabelB, "label-b", "", "report label for the second side")
	diffCmd.Flags().StringVar(&diffOutput, "output", "", "CSV output path, '-' for stdout")
	diffCmd.Flags().StringVar(&diffFileA, "file-a", "", "snapshot file for the first side")
	diffCmd.Flags().StringVar(&diffFileB, "file-b", "", "snapshot file for the second side")

	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if diffAccount != "" {
		cfg.Account = diffAccount
	}
	if diffContainerA != "" {
		cfg.ContainerA = diffContainerA
	}
	if diffContainerB != "" {
		cfg.ContainerB = diffContainerB
	}
	if diffLabelA != "" {
		cfg.LabelA = diffLabelA
	}
	if diffLabelB != "" {
		cfg.LabelB = diffLabelB
	}
	if diffOutput != "" {
		cfg.Output.Path = diffOutput
	}

	logger := newLogger(cfg)
	runID := uuid.New().String()[:8]
	opts := assemblerOptions(cfg)
	ctx := context.Background()

	var snapA, snapB snapshot.Snapshot

	switch {
	case diffFileA != "" && diffFileB != "":
		if snapA, err = snapshot.Load(diffFileA); err != nil {
			return err
		}
		if snapB, err = snapshot.Load(diffFileB); err != nil {
			return err
		}
	case diffFileA != "" || diffFileB != "":
		return fmt.Errorf("offline mode needs both --file-a and --file-b")
	default:
		if cfg.Account == "" || cfg.ContainerA == "" || cfg.ContainerB == "" {
			return fmt.Errorf("live mode needs --account, --container-a and --container-b (or the config file equivalents)")
		}

		client, closeAuth, err := newGTMClient(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeAuth()

		assembler := snapshot.NewAssembler(opts, logger)
		if snapA, err = fetchSnapshot(ctx, client, assembler, cfg.Account, cfg.ContainerA); err != nil {
			return err
		}
		if snapB, err = fetchSnapshot(ctx, client, assembler, cfg.Account, cfg.ContainerB); err != nil {
			return err
		}
	}

	logger.Info("comparison started", map[string]interface{}{
		"run_id":     runID,
		"entities_a": snapA.Count(),
		"entities_b": snapB.Count(),
	})

	records := compare.Diff(snapA, snapB, cfg.LabelA, cfg.LabelB, opts.Categories)

	if cfg.Output.Path == "-" {
		err = export.WriteCSV(os.Stdout, records)
	} else {
		err = export.WriteCSVFile(cfg.Output.Path, records)
	}
	if err != nil {
		return err
	}

	logger.Info("comparison complete", map[string]interface{}{
		"run_id":      runID,
		"differences": len(records),
		"output":      cfg.Output.Path,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}
