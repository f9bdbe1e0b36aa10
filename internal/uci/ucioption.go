//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package uci

import (
	"strconv"
	"strings"

	. "github.com/avhar/corvid/internal/config"
)

// init defines the handful of UCI options this engine exposes. The
// surface is deliberately small: the search core has no LMR/null-move/
// SEE/book/ponder knobs to expose, so only hash sizing, hash clearing
// and the quiescence toggle are reachable from the protocol.
func init() {
	uciOptions = map[string]*uciOption{
		"Clear Hash": {NameID: "Clear Hash", HandlerFunc: clearCache, OptionType: Button},
		"Hash": {NameID: "Hash", HandlerFunc: resizeHash, OptionType: Spin,
			DefaultValue: strconv.Itoa(Settings.Search.TTSize), CurrentValue: strconv.Itoa(Settings.Search.TTSize),
			MinValue: "0", MaxValue: strconv.Itoa(65_536)},
		"Quiescence": {NameID: "Quiescence", HandlerFunc: useQuiescence, OptionType: Check,
			DefaultValue: strconv.FormatBool(Settings.Search.UseQuiescence), CurrentValue: strconv.FormatBool(Settings.Search.UseQuiescence)},
	}
	sortOrderUciOptions = []string{"Clear Hash", "Hash", "Quiescence"}
}

// GetOptions returns every registered option formatted as a UCI
// "option name ..." line, in a fixed, deterministic order.
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String renders one option the way the "uci" response's "option"
// lines require.
func (o *uciOption) String() string {
	var s strings.Builder
	s.WriteString("option name ")
	s.WriteString(o.NameID)
	s.WriteString(" type ")
	switch o.OptionType {
	case Check:
		s.WriteString("check default ")
		s.WriteString(o.DefaultValue)
	case Spin:
		s.WriteString("spin default ")
		s.WriteString(o.DefaultValue)
		s.WriteString(" min ")
		s.WriteString(o.MinValue)
		s.WriteString(" max ")
		s.WriteString(o.MaxValue)
	case Button:
		s.WriteString("button")
	}
	return s.String()
}

// uciOptionType enumerates the UCI option kinds this engine uses.
type uciOptionType int

const (
	Check uciOptionType = iota
	Spin
	Button
)

// optionHandler runs when "setoption" changes an option's value.
type optionHandler func(*UciHandler, *uciOption)

// uciOption is one entry of the "uci" response's option list, along
// with the handler "setoption" dispatches to.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

type optionMap map[string]*uciOption

var uciOptions optionMap
var sortOrderUciOptions []string

func clearCache(u *UciHandler, o *uciOption) {
	u.search.ClearHash()
	log.Debug("cleared transposition table")
}

func resizeHash(u *UciHandler, o *uciOption) {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil {
		log.Warningf("invalid Hash value %q", o.CurrentValue)
		return
	}
	Settings.Search.TTSize = v
	u.search.ResizeHash(v)
	log.Debugf("resized hash to %d MB", v)
}

func useQuiescence(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseQuiescence = v
	log.Debugf("set quiescence to %v", v)
}
