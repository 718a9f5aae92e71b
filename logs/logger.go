package logs

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/reusee/turing/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	cmds.Define("-log-debug", cmds.Func(func() {
		level.Set(slog.LevelDebug)
	}).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(func() {
		level.Set(slog.LevelInfo)
	}).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(func() {
		level.Set(slog.LevelWarn)
	}).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(func() {
		level.Set(slog.LevelError)
	}).Desc("set log level to error"))
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	// systemd captures stderr into the journal already, skip the
	// terminal handler to avoid double entries.
	underSystemd := os.Getenv("INVOCATION_ID") != ""

	var terminalHandler slog.Handler
	if !underSystemd {
		terminalHandler = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
		handlers = append(handlers, terminalHandler)
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		if terminalHandler != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func toJournalKey(str string) string {
	key := make([]rune, 0, len(str))
	for _, r := range str {
		switch {
		case r >= 'a' && r <= 'z':
			key = append(key, r-'a'+'A')
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			key = append(key, r)
		default:
			key = append(key, '_')
		}
	}
	return string(key)
}
