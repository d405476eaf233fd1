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

package httpclient

import (
	"time"

	libcfg "github/sabouaram/blaze/config"
	liberr "github/sabouaram/blaze/errors"
)

// TLSOptions configures the transport's TLS behavior. There's no
// certificate-management library left in this module's dependency tree
// (see DESIGN.md's wholesale-rewrite note on the teacher's certificates/
// package), so this is a thin wrapper over crypto/tls's own fields rather
// than an adapted libtls.Config.
type TLSOptions struct {
	// Enable turns on a non-nil *tls.Config for https:// requests.
	// When false, Go's default transport TLS behavior applies.
	Enable bool

	// ServerName overrides SNI/certificate verification's expected host,
	// for requests routed through a proxy or a rewritten Host header.
	ServerName string `validate:"omitempty,hostname_rfc1123"`

	// InsecureSkipVerify disables certificate verification. Exists for
	// local/test use only; Validate does not forbid it, the same way the
	// teacher's own TLS config doesn't forbid its equivalent knob.
	InsecureSkipVerify bool
}

// ProxyOptions configures a forward HTTP proxy, grounded on
// nabbar-golib/httpcli/options.go's OptionProxy (Endpoint/Username/Password).
type ProxyOptions struct {
	Enable   bool
	Endpoint string `validate:"omitempty,url"`
	Username string
	Password string
}

// Options configures a Client. Grounded on nabbar-golib/httpcli/options.go's
// Options (Timeout/Http2/TLS/ForceIP/Proxy), trimmed of the ForceIP source-
// address pinning knob (no SPEC_FULL.md component needs to pin an outbound
// source address) and extended with the retry/redirect knobs SPEC_FULL §4.10
// and §7 call for.
type Options struct {
	// Timeout bounds an entire Do call (dial, TLS handshake, redirects,
	// retries, and reading the response). Zero means no timeout.
	Timeout time.Duration `validate:"omitempty,min=0"`

	// MaxRedirects caps how many redirects Do follows before failing,
	// per SPEC_FULL §4.10's 10-hop cap.
	MaxRedirects int `validate:"omitempty,min=1"`

	// LegacyRedirect reproduces the historical, RFC-noncompliant behavior
	// of rewriting the method to GET on a 301 or 302 (in addition to the
	// always-rewritten 303). Default false follows RFC 7231 instead:
	// 303 rewrites to GET, 301/302 preserve the original method.
	LegacyRedirect bool

	// RetryMax is how many additional attempts a request gets after a
	// transient failure (connection reset, 5xx, timeout), via
	// hashicorp/go-retryablehttp's own CheckRetry policy.
	RetryMax int `validate:"omitempty,min=0"`

	// RetryWaitMin/RetryWaitMax bound retryablehttp's exponential backoff
	// between attempts.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	TLS   TLSOptions
	Proxy ProxyOptions
}

// DefaultOptions returns the Options a Client uses when none is given:
// a 30s overall timeout, a 10-hop redirect cap, RFC-compliant redirects,
// and three retries with a backoff between 100ms and 2s.
func DefaultOptions() Options {
	return Options{
		Timeout:      30 * time.Second,
		MaxRedirects: 10,
		RetryMax:     3,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxRedirects <= 0 {
		o.MaxRedirects = DefaultOptions().MaxRedirects
	}
	if o.RetryWaitMin <= 0 {
		o.RetryWaitMin = DefaultOptions().RetryWaitMin
	}
	if o.RetryWaitMax <= 0 {
		o.RetryWaitMax = DefaultOptions().RetryWaitMax
	}
	return o
}

// Validate runs struct-tag validation over o, the way every Config type in
// this module does (config.Validate, shared with dbpool.Config and
// reactor.Config).
func (o Options) Validate() liberr.Error {
	return libcfg.Validate(o)
}
