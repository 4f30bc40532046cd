// Package replay records and replays runs. The seed plus the exact
// sequence of input frames fully determines a simulation, so a sealed
// record reproduces a run bit for bit.
package replay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/GauBen/le-pire-cube/internal/sim"
	"github.com/GauBen/le-pire-cube/internal/vecmath"
)

// ErrChecksumMismatch reports a record whose frames no longer match
// its seal.
var ErrChecksumMismatch = errors.New("replay: checksum mismatch")

// Frame is one recorded update: the elapsed time fed to the engine and
// the input state that was live during it.
type Frame struct {
	Elapsed    float64 `yaml:"elapsed"`
	DirectionX float64 `yaml:"dx"`
	DirectionY float64 `yaml:"dy"`
	Jump       bool    `yaml:"jump,omitempty"`
}

// Record is a complete captured run.
type Record struct {
	ID        string    `yaml:"id"`
	Seed      float64   `yaml:"seed"`
	CreatedAt time.Time `yaml:"created_at"`
	Frames    []Frame   `yaml:"frames"`
	Checksum  string    `yaml:"checksum,omitempty"`
}

// NewRecord starts an empty record for a run with the given seed.
func NewRecord(seed float64) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Seed:      seed,
		CreatedAt: time.Now(),
	}
}

// Append captures one update.
func (r *Record) Append(elapsed float64, in sim.Input) {
	r.Frames = append(r.Frames, Frame{
		Elapsed:    elapsed,
		DirectionX: in.Direction.X,
		DirectionY: in.Direction.Y,
		Jump:       in.Jump,
	})
}

// Duration returns the total simulated time of the record.
func (r *Record) Duration() float64 {
	var total float64
	for _, fr := range r.Frames {
		total += fr.Elapsed
	}
	return total
}

// ComputeChecksum hashes the seed and every frame, bit-exact on the
// floating point values.
func (r *Record) ComputeChecksum() string {
	h := xxhash.New()
	var buf [8]byte
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}

	writeFloat(r.Seed)
	for _, fr := range r.Frames {
		writeFloat(fr.Elapsed)
		writeFloat(fr.DirectionX)
		writeFloat(fr.DirectionY)
		if fr.Jump {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Seal stamps the record with its current checksum.
func (r *Record) Seal() {
	r.Checksum = r.ComputeChecksum()
}

// Verify reports whether the record still matches its seal.
func (r *Record) Verify() error {
	if r.Checksum == "" {
		return errors.New("replay: record is not sealed")
	}
	if r.ComputeChecksum() != r.Checksum {
		return ErrChecksumMismatch
	}
	return nil
}

// Save writes the sealed record as YAML.
func (r *Record) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	return nil
}

// Load reads a record and verifies its seal.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if err := r.Verify(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Player feeds a recorded run back into a live input record.
type Player struct {
	record *Record
	next   int
}

// NewPlayer starts playback at the first frame.
func NewPlayer(record *Record) *Player {
	return &Player{record: record}
}

// Step loads the next frame into in and returns the elapsed time to
// feed the engine. ok is false once the record is exhausted.
func (p *Player) Step(in *sim.Input) (elapsed float64, ok bool) {
	if p.next >= len(p.record.Frames) {
		return 0, false
	}
	fr := p.record.Frames[p.next]
	p.next++

	in.Direction = vecmath.New(fr.DirectionX, fr.DirectionY, 0)
	in.Jump = fr.Jump
	return fr.Elapsed, true
}

// Remaining returns the number of frames left to play.
func (p *Player) Remaining() int {
	return len(p.record.Frames) - p.next
}
