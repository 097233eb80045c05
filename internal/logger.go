package internal

import (
	"fmt"
	"log"
	"time"

	"vinti4/entity"
	"vinti4/services"
)

// Logger writes named log records to the console and, when a database is
// attached, to the payment log collection. Debug records are emitted only
// when the debug gate is enabled.
type Logger struct {
	name     string
	debug    bool
	database services.Database
}

func NewLogger(name string, debug bool, database services.Database) *Logger {
	return &Logger{
		name:     name,
		debug:    debug,
		database: database,
	}
}

func (l *Logger) Debug(text string) {
	if !l.debug {
		return
	}
	l.write("debug", text)
}

func (l *Logger) Info(text string) {
	l.write("info", text)
}

func (l *Logger) Warn(text string) {
	l.write("warning", text)
}

func (l *Logger) Error(text string, err error) {
	l.write("error", fmt.Sprintf("%s; %v", text, err))
}

func (l *Logger) write(level, text string) {
	log.Printf("%s: %s: %s", l.name, level, text)
	if l.database == nil {
		return
	}
	message := &entity.LogMessage{
		Time:    time.Now().Format(time.RFC3339),
		Level:   level,
		Feature: l.name,
		Text:    text,
	}
	if err := l.database.WriteLogMessage(message); err != nil {
		log.Printf("%s: error: write log message: %v", l.name, err)
	}
}
