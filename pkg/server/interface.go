/*
Package server implements msgpack IPC for wordhint.

The server reads msgpack messages from stdin and writes one msgpack reply per
message to stdout, so editors and bots can keep a single wordhint process
around instead of ranking the dictionary on every call.

# IPC

Every request carries the full guess history. The server keeps no game
state between messages.

	{"id": "req_001", "g": ["crane/.xX..", "salty/.X..."], "l": 10}

The reply lists candidates in rank order:

	{"id": "req_001", "s": [{"w": "bayou", "r": 812, "wt": 9120}], "c": 1, "t": 52}

An info request returns the dictionary size and the best opening guesses:

	{"id": "info_001", "a": "info", "l": 5}

Invalid guess tokens produce an error reply with code 400 and the server
carries on with the next message:

	{"id": "req_002", "e": "invalid guess \"train/..\": ...", "c": 400}
*/
package server

// Request actions.
const (
	ActionHint = "hint"
	ActionInfo = "info"
)

// Request is a hint or info request. An empty Action means ActionHint.
type Request struct {
	ID      string   `msgpack:"id"`
	Action  string   `msgpack:"a,omitempty"`
	Guesses []string `msgpack:"g,omitempty"`
	Limit   int      `msgpack:"l,omitempty"`
}

// HintSuggestion - minimal suggestion response
type HintSuggestion struct {
	Word   string `msgpack:"w"`
	Rank   int    `msgpack:"r"`
	Weight int    `msgpack:"wt"`
}

// HintResponse - candidates for a guess history
type HintResponse struct {
	ID          string           `msgpack:"id"`
	Suggestions []HintSuggestion `msgpack:"s"`
	Count       int              `msgpack:"c"`
	TimeTaken   int64            `msgpack:"t"`
}

// InfoResponse - dictionary size and opening guesses
type InfoResponse struct {
	ID          string           `msgpack:"id"`
	Words       int              `msgpack:"n"`
	GuessLength int              `msgpack:"len"`
	Starters    []HintSuggestion `msgpack:"s"`
}

// HintError holds basic error information for failed requests
type HintError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
