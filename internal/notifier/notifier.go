// Package notifier delivers reminder notifications through the desktop tray
// companion, which listens on a loopback port advertised in a lockfile.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/models"
)

const secretHeader = "X-Diario-Secret"

var ErrTrayNotRunning = errors.New(constants.TrayProcessPrefix + " is not running")

// Sender delivers one notification.
type Sender interface {
	Notify(ctx context.Context, text string) error
}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// Notifier is the Sender backed by the tray companion.
type Notifier struct {
	configDir   func() (string, error)
	findProcess func(pid int) (ps.Process, error)
	client      *http.Client
}

func New() *Notifier {
	return &Notifier{
		configDir:   os.UserConfigDir,
		findProcess: ps.FindProcess,
		client:      &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *Notifier) Notify(ctx context.Context, text string) error {
	dir, err := n.trayConfigDir()
	if err != nil {
		return err
	}

	tray, err := n.locateTray(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	return n.send(ctx, tray, WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

// trayConfigDir returns the tray companion's config directory, honouring a
// lockfile_dir override in its settings.json.
func (n *Notifier) trayConfigDir() (string, error) {
	base, err := n.configDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	dir := filepath.Join(base, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	if err != nil {
		return dir, nil
	}
	var settings struct {
		Settings struct {
			LockfileDir string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if json.Unmarshal(data, &settings) == nil && settings.Settings.LockfileDir != "" {
		return settings.Settings.LockfileDir, nil
	}
	return dir, nil
}

type trayEndpoint struct {
	port   int
	secret string
}

// locateTray parses a "port|pid|secret" lockfile and checks that pid is a
// live tray process.
func (n *Notifier) locateTray(lockfilePath string) (trayEndpoint, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return trayEndpoint{}, ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return trayEndpoint{}, errors.New("lockfile is malformed")
	}

	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return trayEndpoint{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return trayEndpoint{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return trayEndpoint{}, errors.New("invalid process ID in lockfile")
	}

	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return trayEndpoint{}, errors.New("secret in lockfile is empty")
	}

	proc, err := n.findProcess(pid)
	if err != nil || proc == nil {
		return trayEndpoint{}, ErrTrayNotRunning
	}
	if !strings.HasPrefix(proc.Executable(), constants.TrayProcessPrefix) {
		return trayEndpoint{}, fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayProcessPrefix, proc.Executable())
	}

	return trayEndpoint{port: port, secret: secret}, nil
}

func (n *Notifier) send(ctx context.Context, tray trayEndpoint, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("http://127.0.0.1:%d", tray.port)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, tray.secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
}

// ReminderText renders the notification body for a reminder.
func ReminderText(r models.Reminder, loc *time.Location) string {
	return fmt.Sprintf("⏰ %s (%s)", r.Message, r.Time.In(loc).Format(constants.TimeFormat))
}

// Result records the outcome for one reminder.
type Result struct {
	Reminder models.Reminder
	Text     string
	Err      error
}

// NotifyDue sends one notification per reminder in due and reports each
// outcome. A failed delivery does not stop the rest.
func NotifyDue(ctx context.Context, s Sender, due []models.Reminder, loc *time.Location) []Result {
	results := make([]Result, 0, len(due))
	for _, r := range due {
		text := ReminderText(r, loc)
		res := Result{Reminder: r, Text: text}
		if s != nil {
			res.Err = s.Notify(ctx, text)
		}
		results = append(results, res)
	}
	return results
}
