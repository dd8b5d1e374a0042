package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"careerhub/internal/jobs"
	"careerhub/internal/remote"
)

var jobsQuery jobs.Query

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search job postings from the remote API",
	Long:  `Load postings from the remote API (or the built-in list when it is unreachable) and print the matches.`,
	RunE:  runJobs,
}

func init() {
	jobsCmd.Flags().StringVar(&jobsQuery.Search, "search", "", "Match title or company")
	jobsCmd.Flags().StringVar(&jobsQuery.Location, "location", "", "Match location")
	jobsCmd.Flags().StringVar(&jobsQuery.Type, "type", "", "Exact job type, e.g. Full-time")
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := remote.NewClient(cfg.RemoteBaseURL, cfg.RemoteTimeout)
	svc := jobs.NewService(remote.JobsAdapter{API: client}, 0)
	return printJobs(cmd.Context(), cmd.OutOrStdout(), svc, jobsQuery)
}

func printJobs(ctx context.Context, out io.Writer, svc *jobs.Service, q jobs.Query) error {
	res, err := svc.Search(ctx, q)
	if err != nil {
		return err
	}
	if res.Fallback {
		fmt.Fprintln(out, "(remote API unavailable, showing sample postings)")
	}
	if res.Message != "" {
		fmt.Fprintln(out, res.Message)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tLOCATION\tTYPE\tMATCH\tSKILLS")
	for _, c := range res.Cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d%% (%s)\t%s\n",
			c.ID, c.Title, c.Company, c.Location, c.Type, c.MatchScore, c.MatchLevel, strings.Join(c.Skills, ", "))
	}
	return tw.Flush()
}
