/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package logger is the structured, leveled logging layer shared by every
// other package in this module (reactor, session, dbpool, httpclient, ...).
// It wraps a single logrus.Logger behind a narrower interface so the rest
// of the tree never imports logrus directly.
package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logger used throughout this module.
type Logger interface {
	io.Writer

	// SetLevel changes the minimal level of messages actually emitted.
	SetLevel(lvl Level)

	// GetLevel returns the current minimal level.
	GetLevel() Level

	// SetFields replaces the fields merged onto every entry.
	SetFields(f Fields)

	// GetFields returns the fields merged onto every entry.
	GetFields() Fields

	// Clone returns a new Logger sharing this one's output but with an
	// independent level and field set.
	Clone() Logger

	// Debug logs at DebugLevel.
	Debug(message string, fields Fields)

	// Info logs at InfoLevel.
	Info(message string, fields Fields)

	// Warning logs at WarnLevel.
	Warning(message string, fields Fields)

	// Error logs at ErrorLevel.
	Error(message string, fields Fields)

	// Fatal logs at FatalLevel then calls os.Exit(1) (logrus default).
	Fatal(message string, fields Fields)

	// LogDetails is the common entry point behind Debug/Info/.../Fatal,
	// additionally attaching parent errors as an "errors" field.
	LogDetails(lvl Level, message string, fields Fields, errs ...error)

	// CheckError logs err at lvlKO if non-nil, else at lvlOK (when lvlOK
	// isn't NilLevel) with message, and reports whether err was nil.
	CheckError(lvlKO, lvlOK Level, message string, err error) bool
}

type lgr struct {
	mu  sync.RWMutex
	lvl Level
	fld Fields
	out *logrus.Logger
}

// New returns a Logger at InfoLevel writing JSON-less text lines to the
// given io.Writer (or os.Stderr's logrus default if w is nil).
func New(w io.Writer) Logger {
	l := logrus.New()
	if w != nil {
		l.SetOutput(w)
	}

	return &lgr{
		lvl: InfoLevel,
		fld: make(Fields),
		out: l,
	}
}

func (l *lgr) SetLevel(lvl Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lvl = lvl
	// LogDetails filters against l.lvl; the logrus logger, shared with
	// every Clone, is left open to all levels so one Clone's SetLevel
	// cannot narrow what another emits.
	l.out.SetLevel(logrus.DebugLevel)
}

func (l *lgr) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lvl
}

func (l *lgr) SetFields(f Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fld = f.Clone()
}

func (l *lgr) GetFields() Fields {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fld.Clone()
}

func (l *lgr) Clone() Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := &lgr{
		lvl: l.lvl,
		fld: l.fld.Clone(),
		out: l.out,
	}
	return n
}

func (l *lgr) Write(p []byte) (int, error) {
	l.Info(string(p), nil)
	return len(p), nil
}

func (l *lgr) Debug(message string, fields Fields)   { l.LogDetails(DebugLevel, message, fields) }
func (l *lgr) Info(message string, fields Fields)    { l.LogDetails(InfoLevel, message, fields) }
func (l *lgr) Warning(message string, fields Fields) { l.LogDetails(WarnLevel, message, fields) }
func (l *lgr) Error(message string, fields Fields)   { l.LogDetails(ErrorLevel, message, fields) }

func (l *lgr) Fatal(message string, fields Fields) {
	l.LogDetails(FatalLevel, message, fields)
	l.out.Exit(1)
}

func (l *lgr) LogDetails(lvl Level, message string, fields Fields, errs ...error) {
	cur := l.GetLevel()
	if lvl == NilLevel || cur == NilLevel || lvl > cur {
		return
	}

	all := l.GetFields().Merge(fields)

	if len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			if e != nil {
				msgs = append(msgs, e.Error())
			}
		}
		if len(msgs) > 0 {
			all["errors"] = msgs
		}
	}

	l.out.WithFields(logrus.Fields(all)).Log(lvl.Logrus(), message)
}

func (l *lgr) CheckError(lvlKO, lvlOK Level, message string, err error) bool {
	if err != nil {
		l.LogDetails(lvlKO, message, nil, err)
		return false
	}

	if lvlOK != NilLevel {
		l.LogDetails(lvlOK, message, nil)
	}

	return true
}
