package profiler

import "errors"

type ssFile struct {
	Schema             string      `json:"$schema"`
	Shared             ssShared    `json:"shared"`
	Profiles           []ssProfile `json:"profiles"`
	ActiveProfileIndex int         `json:"activeProfileIndex"`
	Exporter           string      `json:"exporter,omitempty"`
	Name               string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"` // "evented"
	Name       string    `json:"name"`
	Unit       string    `json:"unit"` // "microseconds"
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since first event
	Frame int    `json:"frame"`
}

// buildSpeedscope converts ring events into balanced open/close pairs.
// Closes without a matching open (their open was overwritten) are dropped and
// scopes still open at the end are closed at the last timestamp.
func buildSpeedscope(evs []evEntry, name string) (*ssFile, error) {
	muFrames.Lock()
	fs := make([]ssFrame, len(frames))
	for i, n := range frames {
		fs[i] = ssFrame{Name: n}
	}
	muFrames.Unlock()

	base := evs[0].AtNS
	var endUS int64
	lastUS := int64(0)
	out := make([]ssEvent, 0, len(evs))
	stack := make([]int, 0, 64)

	for _, e := range evs {
		atUS := max((e.AtNS-base)/1000, lastUS) // keep µs monotonic
		if e.Open {
			out = append(out, ssEvent{Type: "O", At: atUS, Frame: e.FrameID})
			stack = append(stack, e.FrameID)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.FrameID {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: atUS, Frame: e.FrameID})
		}
		lastUS = atUS
		endUS = max(endUS, atUS)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}
	if len(out) == 0 {
		return nil, errors.New("profiler: no usable events after filtering")
	}

	return &ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     name,
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   out,
		}},
		Exporter: "aether-profiler",
		Name:     name,
	}, nil
}
