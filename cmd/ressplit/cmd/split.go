package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ressplit"
	"github.com/katalvlaran/ressplit/core"
	"github.com/katalvlaran/ressplit/tokencount"
)

var chatOutput bool

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Read resources from stdin and write grouped output to stdout",
	RunE:  runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().BoolVar(&chatOutput, "chat", false, "render each group's body as an OpenAI chat completion message list")
}

// record is the JSON shape of one input resource and the payload carried
// through the pipeline unexamined.
type record struct {
	ID            string `json:"id,omitempty"`
	Role          string `json:"role,omitempty"`
	Text          string `json:"text"`
	StartIncision string `json:"start_incision,omitempty"`
	EndIncision   string `json:"end_incision,omitempty"`
}

// groupOutput is the JSON shape of one emitted group.
type groupOutput struct {
	Head            []record                       `json:"head"`
	Body            []record                       `json:"body"`
	Tail            []record                       `json:"tail"`
	HeadRemainCount int                             `json:"head_remain_count"`
	TailRemainCount int                             `json:"tail_remain_count"`
	BodyMessages    []openai.ChatCompletionMessage `json:"body_messages,omitempty"`
}

func runSplit(cmd *cobra.Command, args []string) error {
	records, err := readRecords(os.Stdin)
	if err != nil {
		return err
	}

	var counter *tokencount.Counter
	if tokenize {
		counter, err = tokencount.NewCounter(encodingName)
		if err != nil {
			return fmt.Errorf("ressplit: %w", err)
		}
	}

	resources, err := toResources(records, counter)
	if err != nil {
		return err
	}

	border, err := parseIncision(borderIncision)
	if err != nil {
		return err
	}

	cfg := ressplit.Config{
		MaxSegmentCount: maxSegmentCount,
		BorderIncision:  border,
		GapRate:         gapRate,
		TailRate:        tailRate,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("ressplit: invalid configuration: %w", err)
	}

	seq, err := ressplit.Split(func(yield func(core.Resource[record]) bool) {
		for _, r := range resources {
			if !yield(r) {
				return
			}
		}
	}, cfg)
	if err != nil {
		return fmt.Errorf("ressplit: %w", err)
	}

	var out []groupOutput
	for g := range seq {
		out = append(out, renderGroup(g))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readRecords(r io.Reader) ([]record, error) {
	var records []record
	if err := json.NewDecoder(bufio.NewReader(r)).Decode(&records); err != nil {
		return nil, fmt.Errorf("ressplit: decoding input: %w", err)
	}
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}
	return records, nil
}

func toResources(records []record, counter *tokencount.Counter) ([]core.Resource[record], error) {
	resources := make([]core.Resource[record], 0, len(records))
	for _, rec := range records {
		start, err := parseIncision(rec.StartIncision)
		if err != nil {
			return nil, err
		}
		end, err := parseIncision(rec.EndIncision)
		if err != nil {
			return nil, err
		}

		weight := len([]rune(rec.Text))
		if counter != nil {
			weight = counter.Count(rec.Text)
		}

		resources = append(resources, core.Resource[record]{
			Count:         weight,
			StartIncision: start,
			EndIncision:   end,
			Payload:       rec,
		})
	}
	return resources, nil
}

func renderGroup(g core.Group[record]) groupOutput {
	out := groupOutput{
		Head:            flattenItems(g.Head),
		Body:            flattenItems(g.Body),
		Tail:            flattenItems(g.Tail),
		HeadRemainCount: g.HeadRemainCount,
		TailRemainCount: g.TailRemainCount,
	}
	if chatOutput {
		out.BodyMessages = toChatMessages(out.Body)
	}
	return out
}

func flattenItems(items []core.Item[record]) []record {
	var out []record
	for _, it := range items {
		switch v := it.(type) {
		case core.Resource[record]:
			out = append(out, v.Payload)
		case core.Segment[record]:
			for _, r := range v.Resources {
				out = append(out, r.Payload)
			}
		}
	}
	return out
}

func toChatMessages(records []record) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(records))
	for _, rec := range records {
		role := rec.Role
		if role == "" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: rec.Text,
		})
	}
	return messages
}
