package game

import "encoding/json"

// EncodeSnapshot serializes a state snapshot to its canonical JSON form.
// Client and server exchange exactly this document and compare the decoded
// states for equality after every action.
func EncodeSnapshot(s GameState) ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot is the inverse of EncodeSnapshot. A decoded snapshot is
// structurally equal to the state that produced it.
func DecodeSnapshot(b []byte) (GameState, error) {
	var s GameState
	if err := json.Unmarshal(b, &s); err != nil {
		return GameState{}, err
	}
	return s, nil
}
