package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/services"
)

// LogsCmd reads back saved time logs
type LogsCmd struct {
	List LogsListCmd `cmd:"list" help:"List saved time logs, newest first" default:"1"`
	View LogsViewCmd `cmd:"view" help:"Show a single time log"`
}

// LogsListCmd lists time logs
type LogsListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Limit  int    `help:"Maximum number of logs (0 = all)" default:"0"`
	Since  string `help:"Only logs dated on or after this day (YYYY-MM-DD)"`
	Task   string `help:"Only logs for this task (e.g. 42 or #42)"`
	Until  string `help:"Only logs dated on or before this day (YYYY-MM-DD)"`
}

// LogsViewCmd shows one time log
type LogsViewCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	ID     string `arg:"" help:"Time log id"`
}

// timeLogOutput is the serialized shape of a time log
type timeLogOutput struct {
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Date        string    `json:"date" yaml:"date"`
	Description string    `json:"description" yaml:"description"`
	Hours       float64   `json:"hours" yaml:"hours"`
	ID          string    `json:"id" yaml:"id"`
	Seconds     int64     `json:"seconds" yaml:"seconds"`
	Source      string    `json:"source" yaml:"source"`
	TaskID      int64     `json:"task_id" yaml:"task_id"`
}

type timeLogListOutput struct {
	Logs         []timeLogOutput `json:"logs" yaml:"logs"`
	TotalHours   float64         `json:"total_hours" yaml:"total_hours"`
	TotalSeconds int64           `json:"total_seconds" yaml:"total_seconds"`
}

func toTimeLogOutput(log domain.StoredTimeLog) timeLogOutput {
	return timeLogOutput{
		CreatedAt:   log.CreatedAt,
		Date:        log.Date,
		Description: log.Description,
		Hours:       log.Hours,
		ID:          log.ID,
		Seconds:     log.Seconds,
		Source:      string(log.Source),
		TaskID:      int64(log.TaskID),
	}
}

// Run executes the list command
func (l *LogsListCmd) Run(cli *CLI) error {
	filter := domain.TimeLogFilter{
		Limit: l.Limit,
		Since: l.Since,
		Until: l.Until,
	}
	if l.Task != "" {
		id, err := domain.ParseTaskID(l.Task)
		if err != nil {
			return err
		}
		filter.TaskID = id
	}

	logs, err := cli.Container.TimeLogService.ListTimeLogs(context.Background(), filter)
	if err != nil {
		return err
	}

	return writeTimeLogs(os.Stdout, l.Format, logs)
}

// Run executes the view command
func (v *LogsViewCmd) Run(cli *CLI) error {
	log, err := cli.Container.TimeLogService.GetTimeLog(context.Background(), v.ID)
	if err != nil {
		return err
	}

	switch v.Format {
	case "json", "yaml":
		return encode(os.Stdout, v.Format, toTimeLogOutput(*log))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", log.ID)
	fmt.Fprintf(w, "Task:\t#%s\n", log.TaskID)
	fmt.Fprintf(w, "Date:\t%s\n", log.Date)
	fmt.Fprintf(w, "Duration:\t%s\n", domain.FormatElapsed(log.Seconds))
	fmt.Fprintf(w, "Hours:\t%s\n", domain.FormatHours(log.Hours))
	fmt.Fprintf(w, "Source:\t%s\n", log.Source)
	fmt.Fprintf(w, "Description:\t%s\n", log.Description)
	fmt.Fprintf(w, "Saved:\t%s\n", log.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return w.Flush()
}

func writeTimeLogs(out io.Writer, format string, logs []domain.StoredTimeLog) error {
	totalSeconds := services.TotalSeconds(logs)

	switch format {
	case "json", "yaml":
		output := timeLogListOutput{
			Logs:         make([]timeLogOutput, 0, len(logs)),
			TotalHours:   domain.HoursFromSeconds(totalSeconds),
			TotalSeconds: totalSeconds,
		}
		for _, log := range logs {
			output.Logs = append(output.Logs, toTimeLogOutput(log))
		}
		return encode(out, format, output)
	}

	if len(logs) == 0 {
		fmt.Fprintln(out, "No time logs found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTASK\tDURATION\tHOURS\tSOURCE\tDESCRIPTION\tID")
	for _, log := range logs {
		fmt.Fprintf(w, "%s\t#%s\t%s\t%s\t%s\t%s\t%s\n",
			log.Date,
			log.TaskID,
			domain.FormatElapsed(log.Seconds),
			domain.FormatHours(log.Hours),
			log.Source,
			log.Description,
			log.ID)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d log(s), %s (%sh)\n",
		len(logs),
		domain.FormatElapsed(totalSeconds),
		domain.FormatHours(domain.HoursFromSeconds(totalSeconds)))
	return nil
}

func encode(out io.Writer, format string, value any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
