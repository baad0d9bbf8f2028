package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sukalov/lyricecho/internal/db"
	"github.com/sukalov/lyricecho/internal/utils"
)

func topCMD() *cobra.Command {
	var limit int
	var sessionID string

	top := &cobra.Command{
		Use:   "top",
		Short: "Print the most looked-up songs",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := utils.LoadEnv([]string{"TURSO_DATABASE_URL"})
			if err != nil {
				return err
			}

			database, err := db.Open(env["TURSO_DATABASE_URL"], utils.GetEnv("TURSO_AUTH_TOKEN", ""))
			if err != nil {
				return err
			}
			defer db.Close(database)

			history := db.NewHistory(database)
			if err := history.Migrate(cmd.Context()); err != nil {
				return err
			}
			return printTop(cmd.Context(), os.Stdout, history, limit, sessionID)
		},
	}
	top.Flags().IntVar(&limit, "limit", 10, "number of songs to print")
	top.Flags().StringVar(&sessionID, "session", "", "also print how many searches this session made")
	return top
}

func printTop(ctx context.Context, out io.Writer, history *db.History, limit int, sessionID string) error {
	if sessionID != "" {
		n, err := history.SearchCount(ctx, sessionID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "session %s made %d searches\n\n", sessionID, n)
	}

	songs, err := history.TopSongs(ctx, limit)
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		fmt.Fprintln(out, "no lookups recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LOOKUPS\tTITLE\tARTIST\tURL")
	for _, s := range songs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Lookups, s.Title, s.Artist, s.URL)
	}
	return w.Flush()
}
