package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// recordingsCmd represents the recordings command
var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "List call recordings",
	RunE:  runRecordings,
}

// transcriptionsCmd represents the transcriptions command
var transcriptionsCmd = &cobra.Command{
	Use:   "transcriptions",
	Short: "List call transcriptions",
	RunE:  runTranscriptions,
}

var transcriptionTextCmd = &cobra.Command{
	Use:   "text <id>",
	Short: "Fetch the text of one transcription",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranscriptionText,
}

func init() {
	addListFlags(recordingsCmd)
	addListFlags(transcriptionsCmd)
	transcriptionsCmd.AddCommand(transcriptionTextCmd)
}

func runRecordings(cmd *cobra.Command, args []string) error {
	recordings, err := client.GetAudioRecordings(context.Background(), listOptions())
	if err != nil {
		return err
	}

	if len(recordings) == 0 {
		fmt.Println("No recordings found.")
		return nil
	}

	for _, r := range recordings {
		fmt.Printf("• #%d  %s  %s → %s  %.0fs  $%.4f\n",
			r.ID, r.StartTime.Format("2006-01-02 15:04:05"),
			r.SrcRoute, r.DstRoute, r.Duration.Float64(), r.Cost.Float64())
	}
	return nil
}

func runTranscriptions(cmd *cobra.Command, args []string) error {
	transcriptions, err := client.GetAudioTranscriptions(context.Background(), listOptions())
	if err != nil {
		return err
	}

	if len(transcriptions) == 0 {
		fmt.Println("No transcriptions found.")
		return nil
	}

	for _, t := range transcriptions {
		fmt.Printf("• #%d  %s  %s → %s  %.0fs\n",
			t.ID, t.StartTime.Format("2006-01-02 15:04:05"),
			t.SrcRoute, t.DstRoute, t.Duration.Float64())
	}
	return nil
}

func runTranscriptionText(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid transcription id: %s", args[0])
	}

	text, err := client.GetAudioTranscriptionText(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
