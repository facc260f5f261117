package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workroomhq/surfacegate/internal/surface"
)

var kindSummaries = map[surface.Kind]string{
	surface.KindWhatNext:      "single primary suggestion with optional actions and notes",
	surface.KindTodaySchedule: "day layout of event/focus blocks with optional suggestions",
	surface.KindPriorityList:  "ranked task list with optional quick actions",
	surface.KindTriageTable:   "grouped queue items with approve/decline operations",
	surface.KindContextAdd:    "context items the user can attach to the session",
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the supported surface kinds",
	Run: func(cmd *cobra.Command, args []string) {
		for _, kind := range surface.Kinds() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", kind, kindSummaries[kind])
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
