package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"maplist-generator/internal/mappool"
)

// LoadTournament reads a tournament export from disk.
func LoadTournament(path string) (*InputData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read %s", path)
	}
	data, err := parseTournament(string(raw))
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse %s", path)
	}
	return data, nil
}

// parseTournament decodes the "tournament" and "matches" keys of raw. Other
// keys are ignored.
func parseTournament(raw string) (*InputData, error) {
	if !gjson.Valid(raw) {
		return nil, eris.New("not valid JSON")
	}
	root := gjson.Parse(raw)
	t := root.Get("tournament")
	if !t.IsObject() {
		return nil, eris.New("missing tournament object")
	}

	data := &InputData{
		Tournament: Tournament{
			ID:              int(t.Get("id").Int()),
			Name:            t.Get("name").String(),
			FollowModeOrder: t.Get("followModeOrder").Bool(),
		},
	}

	modes, err := readModes(t.Get("modesIncluded"))
	if err != nil {
		return nil, eris.Wrap(err, "modesIncluded")
	}
	data.Tournament.ModesIncluded = modes

	data.Tournament.TiebreakerMaps, err = readPairs(t.Get("tiebreakerMaps"))
	if err != nil {
		return nil, eris.Wrap(err, "tiebreakerMaps")
	}

	t.Get("teams").ForEach(func(_, v gjson.Result) bool {
		team := TeamEntry{
			ID:   int(v.Get("id").Int()),
			Name: v.Get("name").String(),
		}
		team.MapPool, err = readPairs(v.Get("mapPool"))
		if err != nil {
			err = eris.Wrapf(err, "team %d mapPool", team.ID)
			return false
		}
		data.Tournament.Teams = append(data.Tournament.Teams, team)
		return true
	})
	if err != nil {
		return nil, err
	}

	root.Get("matches").ForEach(func(_, v gjson.Result) bool {
		data.Matches = append(data.Matches, Match{
			ID:          int(v.Get("id").Int()),
			Round:       v.Get("round").String(),
			BestOf:      int(v.Get("bestOf").Int()),
			OpponentOne: int(v.Get("opponentOne").Int()),
			OpponentTwo: int(v.Get("opponentTwo").Int()),
		})
		return true
	})

	return data, nil
}

func readModes(v gjson.Result) ([]mappool.Mode, error) {
	var (
		modes []mappool.Mode
		err   error
	)
	v.ForEach(func(_, item gjson.Result) bool {
		var m mappool.Mode
		m, err = mappool.ParseMode(item.String())
		if err != nil {
			return false
		}
		modes = append(modes, m)
		return true
	})
	return modes, err
}

// readPairs reads an array of {"mode", "stageId"} objects.
func readPairs(v gjson.Result) ([]mappool.Pair, error) {
	var (
		pairs []mappool.Pair
		err   error
	)
	v.ForEach(func(_, item gjson.Result) bool {
		stage := item.Get("stageId")
		if stage.Type != gjson.Number {
			err = eris.Errorf("entry %s has no numeric stageId", item.Raw)
			return false
		}
		var m mappool.Mode
		m, err = mappool.ParseMode(item.Get("mode").String())
		if err != nil {
			return false
		}
		pairs = append(pairs, mappool.Pair{Mode: m, StageID: mappool.StageID(stage.Int())})
		return true
	})
	return pairs, err
}
