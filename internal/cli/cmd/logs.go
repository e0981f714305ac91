package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bnema/tabmaster/internal/cli/styles"
)

// logFileName matches the file the bootstrap package writes.
const logFileName = "tabmaster.log"

const defaultLogsLines = 50

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View application logs",
	Long: `View the tabmaster log file.

The interactive UI always logs to this file; other commands only do when
logging.enable_file_log is set.

Examples:
  tabmaster logs              # Show the last 50 lines
  tabmaster logs -n 200       # Show the last 200 lines
  tabmaster logs -f           # Follow new lines
  tabmaster logs list         # List the log file and its rotated backups`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationApp: appNone},
	RunE:        runLogs,
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log files",
	Args:  cobra.NoArgs,
	RunE:  runLogsList,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long: `Remove rotated log backups.

Use --all to also remove the active log file.`,
	Args: cobra.NoArgs,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsListCmd, logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove the active log file too")
}

// logFile describes one file in the log directory.
type logFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Active  bool
}

func logDir() (string, error) {
	manager, err := loadConfig()
	if err != nil {
		return "", err
	}
	return manager.Get().Logging.LogDir, nil
}

func runLogs(cmd *cobra.Command, _ []string) error {
	dir, err := logDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, logFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(cmd.OutOrStdout(), theme.Subtle.Render("No log file at "+path))
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	if err := showLog(cmd.OutOrStdout(), path, logsLines); err != nil {
		return err
	}
	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return followLog(ctx, cmd.OutOrStdout(), path)
}

// listLogFiles returns the active log and its rotated backups, newest first.
func listLogFiles(dir string) ([]logFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var files []logFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || (name != logFileName && !strings.HasPrefix(name, logFileName+".")) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Active:  name == logFileName,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Active != files[j].Active {
			return files[i].Active
		}
		return files[i].Name > files[j].Name
	})
	return files, nil
}

func runLogsList(cmd *cobra.Command, _ []string) error {
	dir, err := logDir()
	if err != nil {
		return err
	}
	files, err := listLogFiles(dir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No log files in "+dir))
		return nil
	}
	for _, f := range files {
		name := theme.Normal.Render(f.Name)
		if f.Active {
			name = theme.Highlight.Render(f.Name)
		}
		fmt.Fprintf(out, "  %s  %s  %s\n",
			name,
			theme.Subtle.Render(f.ModTime.Format("2006-01-02 15:04")),
			theme.Subtle.Render(formatSize(f.Size)),
		)
	}
	return nil
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	dir, err := logDir()
	if err != nil {
		return err
	}
	files, err := listLogFiles(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var removed int
	for _, f := range files {
		if f.Active && !logsClearAll {
			continue
		}
		if err := os.Remove(f.Path); err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", theme.ErrorStyle.Render(styles.IconX), f.Name, err)
			continue
		}
		fmt.Fprintf(out, "%s %s (%s)\n", theme.SuccessStyle.Render(styles.IconCheck), f.Name, formatSize(f.Size))
		removed++
	}

	if removed == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No logs to clear"))
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d file(s)", removed)))
	return nil
}

// showLog prints the last n lines of path.
func showLog(w io.Writer, path string, n int) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	lines, err := lastLines(file, n)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(w, colorizeLogLine(line))
	}
	return nil
}

// lastLines returns at most n trailing lines of r.
func lastLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// followLog prints lines appended to path until ctx is done.
func followLog(ctx context.Context, w io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch log file: %w", err)
	}

	fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))

	reader := bufio.NewReader(file)
	pending := ""
	drain := func() error {
		for {
			chunk, err := reader.ReadString('\n')
			pending += chunk
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}
			fmt.Fprintln(w, colorizeLogLine(strings.TrimRight(pending, "\n")))
			pending = ""
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Rotation renames the file away; stop rather than follow the backup.
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				fmt.Fprintln(w, theme.Subtle.Render("Log file rotated"))
				return nil
			}
			if event.Has(fsnotify.Write) {
				if err := drain(); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log file: %w", err)
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level   string `json:"level"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry)
	}

	// Console format
	switch {
	case containsAny(line, " ERR ", " FTL "):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, entry.Message)
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// formatSize formats file size in human-readable format
func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
