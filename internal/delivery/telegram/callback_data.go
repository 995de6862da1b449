package telegram

import (
	"fmt"
	"strings"
)

// Callback action constants.
const (
	actionSessions = "sessions" // paged level list
	actionOpen     = "open"     // session overview
	actionStudy    = "study"    // card front
	actionReveal   = "reveal"   // card back
	actionAnswer   = "answer"   // record card answer
	actionFinish   = "finish"   // mark session completed
	actionNext     = "next"     // next recommended session
	actionProgress = "progress" // refresh progress screen
	actionReset    = "reset"    // reset confirmation
)

// Reset sub-actions.
const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildSessionsCallback(page int) string {
	return callbackData{Action: actionSessions, Params: []string{fmt.Sprint(page)}}.encode()
}

func buildOpenCallback(sessionID string) string {
	return callbackData{Action: actionOpen, Params: []string{sessionID}}.encode()
}

func buildStudyCallback(sessionID string, index int) string {
	return callbackData{Action: actionStudy, Params: []string{sessionID, fmt.Sprint(index)}}.encode()
}

func buildRevealCallback(sessionID string, index int) string {
	return callbackData{Action: actionReveal, Params: []string{sessionID, fmt.Sprint(index)}}.encode()
}

func buildAnswerCallback(sessionID string, index int, knew bool) string {
	k := "0"
	if knew {
		k = "1"
	}
	return callbackData{Action: actionAnswer, Params: []string{sessionID, fmt.Sprint(index), k}}.encode()
}

func buildFinishCallback(sessionID string) string {
	return callbackData{Action: actionFinish, Params: []string{sessionID}}.encode()
}

func buildNextCallback() string {
	return callbackData{Action: actionNext}.encode()
}

func buildProgressCallback() string {
	return callbackData{Action: actionProgress}.encode()
}

func buildResetCallback(sub string) string {
	return callbackData{Action: actionReset, Params: []string{sub}}.encode()
}
