package marquee

import "math"

// DriverState is the lifecycle state of an animation driver.
type DriverState int

const (
	Idle DriverState = iota
	Running
	Paused
	Cancelled
)

func (s DriverState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Cancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Driver advances one strip's offset once per frame. It owns exactly one
// frame handle while running or paused and never outlives its strip.
type Driver struct {
	strip  *Strip
	sched  *Scheduler
	handle FrameHandle
	state  DriverState
	offset float64
	sign   float64
	speed  float64
}

func newDriver(strip *Strip, sched *Scheduler, opts Options) *Driver {
	return &Driver{
		strip: strip,
		sched: sched,
		sign:  opts.Direction.Sign(),
		speed: opts.Speed,
	}
}

// Start moves an idle driver to running and requests its first frame.
func (d *Driver) Start() {
	if d.state != Idle {
		return
	}
	d.state = Running
	d.strip.translate(d.offset)
	d.handle = d.sched.Request(d.frame)
}

func (d *Driver) frame() {
	if d.state == Cancelled || d.strip.Detached() {
		return
	}
	if d.state == Running {
		d.advance()
	}
	d.handle = d.sched.Request(d.frame)
}

// advance steps the offset by one frame, normalized against the block width
// so it stays bounded no matter how many frames have elapsed.
func (d *Driver) advance() {
	bw := d.strip.BlockWidth()
	off := math.Mod(d.offset+d.sign*d.speed, bw)
	if off > 0 {
		off -= bw
	}
	d.offset = off
	d.strip.translate(off)
}

// Pause freezes the offset. Frames keep arriving; they just don't move anything.
func (d *Driver) Pause() {
	if d.state == Running {
		d.state = Paused
	}
}

func (d *Driver) Resume() {
	if d.state == Paused {
		d.state = Running
	}
}

// Cancel drops the pending frame. A cancelled driver never runs again.
func (d *Driver) Cancel() {
	if d.state == Cancelled {
		return
	}
	if d.handle != 0 {
		d.sched.Cancel(d.handle)
		d.handle = 0
	}
	d.state = Cancelled
}

func (d *Driver) State() DriverState { return d.state }
func (d *Driver) Offset() float64 { return d.offset }
func (d *Driver) Handle() FrameHandle { return d.handle }
