package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"club-elections/internal/domain"
	apperrors "club-elections/pkg/errors"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	var apiURL string

	root := &cobra.Command{
		Use:     "electionsctl",
		Short:   "Inspect club election state over the HTTP API",
		Version: version,
	}
	root.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "Base URL of the elections API")

	electionsCmd := &cobra.Command{
		Use:   "elections",
		Short: "List elections with their contested positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElections(apiURL)
		},
	}

	resultsCmd := &cobra.Command{
		Use:   "results <ballot-id>",
		Short: "Show the tally for a ballot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("ballot-id must be a positive integer, got %q", args[0])
			}
			return runResults(apiURL, id)
		},
	}

	winnersCmd := &cobra.Command{
		Use:   "winners <election-id>",
		Short: "List registered winners for an election",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("election-id must be a positive integer, got %q", args[0])
			}
			return runWinners(apiURL, id)
		},
	}

	root.AddCommand(electionsCmd, resultsCmd, winnersCmd)

	if err := root.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func defaultAPIURL() string {
	if v := os.Getenv("ELECTIONS_API_URL"); v != "" {
		return v
	}
	return "http://localhost:4000"
}

// fetchJSON issues a GET against the API and decodes the body into out.
// Non-2xx responses are surfaced using the API's error envelope when present.
func fetchJSON(apiURL, path string, out interface{}) error {
	client := &http.Client{Timeout: 15 * time.Second}

	resp, err := client.Get(apiURL + path)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope apperrors.ErrorResponse
		if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil && envelope.Error.Message != "" {
			return fmt.Errorf("%s: %s", resp.Status, envelope.Error.Message)
		}
		return fmt.Errorf("%s returned %s", path, resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

func runElections(apiURL string) error {
	var elections []domain.ElectionSummary
	if err := fetchJSON(apiURL, "/elections", &elections); err != nil {
		return err
	}

	if len(elections) == 0 {
		color.Yellow("No elections found")
		return nil
	}

	color.Cyan("\nElections")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Term", "Election Date", "Nominate By", "Positions"})
	for _, e := range elections {
		table.Append([]string{
			strconv.Itoa(e.ID),
			e.TermName,
			e.Date,
			e.NominateBy,
			e.Positions,
		})
	}
	table.Render()
	return nil
}

func runResults(apiURL string, ballotID int) error {
	var results domain.BallotResults
	if err := fetchJSON(apiURL, fmt.Sprintf("/elections/ballots/%d/results", ballotID), &results); err != nil {
		return err
	}

	color.Cyan("\nBallot %d results (%d votes cast)", ballotID, results.TotalVotes)
	if len(results.Results) == 0 {
		color.Yellow("No candidates on this ballot")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Candidate ID", "Candidate", "Votes"})
	for _, r := range results.Results {
		table.Append([]string{
			strconv.Itoa(r.CandidateID),
			r.CandidateName,
			strconv.Itoa(r.VoteCount),
		})
	}
	table.Render()
	return nil
}

func runWinners(apiURL string, electionID int) error {
	var winners []domain.ElectionWinner
	if err := fetchJSON(apiURL, fmt.Sprintf("/elections/elections/%d/winners", electionID), &winners); err != nil {
		return err
	}

	if len(winners) == 0 {
		color.Yellow("No winners registered for election %d", electionID)
		return nil
	}

	color.Cyan("\nWinners for election %d", electionID)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Position", "Winner"})
	for _, w := range winners {
		table.Append([]string{w.PositionTitle, w.WinnerName})
	}
	table.Render()
	return nil
}
