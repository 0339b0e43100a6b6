package game

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func midGameState() GameState {
	s := NewGame()
	s.Board[Position{Row: 1, Col: 2}.Index()].Unit = Unit{
		ID: "p0-swordsman-1", Owner: 0, Type: Swordsman,
		Position: Position{Row: 1, Col: 2}, ActedThisTurn: true,
	}
	s.Board[Position{Row: 3, Col: 3}.Index()].Unit = Unit{
		ID: "p1-archer-2", Owner: 1, Type: Archer,
		Position: Position{Row: 3, Col: 3},
	}
	s.Players[0].DeploymentCounts[Swordsman] = 1
	s.Players[1].DeploymentCounts[Archer] = 1
	s.Players[1].ActionsRemaining = 2
	s.CurrentPlayer = 1
	s.TurnNumber = 7
	s.FreeDeploymentsRemaining = 1
	s.HasActedThisTurn = true
	s.UnitCounter = 2
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	want := midGameState()
	b, err := EncodeSnapshot(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatal("decoded snapshot differs from the encoded state")
	}
}

func TestSnapshotOmitsEmptyTiles(t *testing.T) {
	b, err := EncodeSnapshot(NewGame())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.Contains(string(b), `"unit"`) {
		t.Fatal("empty tiles must not serialize a unit")
	}
}

func TestDeploymentCountsWireFormat(t *testing.T) {
	var d DeploymentCounts
	d[Cavalry] = 2
	d[Spearman] = 1

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]int
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(m) != NumUnitTypes {
		t.Fatalf("expected one key per unit type, got %d", len(m))
	}
	if m["cavalry"] != 2 || m["spearman"] != 1 || m["archer"] != 0 {
		t.Fatalf("unexpected counts: %v", m)
	}

	var back DeploymentCounts
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal counts: %v", err)
	}
	if back != d {
		t.Fatalf("round trip changed counts: %v != %v", back, d)
	}

	if err := json.Unmarshal([]byte(`{"dragoon":1}`), &back); err == nil {
		t.Fatal("unknown unit name must fail to decode")
	}
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	if _, err := DecodeSnapshot([]byte(`{"board":"nope"`)); err == nil {
		t.Fatal("malformed snapshot must fail to decode")
	}
}
