package swim

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/leesd556/swimfd/internal/logging"
)

// Server is the shared-state handle Receiver and Prober both run against.
// Each guarded field is an independent lock (member, memberList's own
// internal lock, blacklist) so no acquisition ordering across them can
// deadlock; pause and rounds are lock-free atomics.
type Server struct {
	selfMu sync.RWMutex
	self   Member

	memberList *MemberList
	blacklist  *Blacklist
	socket     *Socket
	trace      Trace
	logger     logging.Logger
	timing     Timing

	// inbox is the single-producer/single-consumer FIFO carrying decoded
	// ACKs from the Receiver to the Prober. PING and PINGREQ never touch
	// it; they are handled entirely inside the Receiver.
	inbox chan ackEnvelope

	pause  uint32 // atomic bool
	rounds int64  // atomic, signed so it can wrap to 0
}

// NewServer binds a datagram socket at config.BindAddress, seeds the
// member list with config.Persistent, and returns the shared handle both
// loops will run against. Bind/timeout failures propagate to the caller;
// no partial Server is ever returned.
func NewServer(config Config, trace Trace, logger logging.Logger) (*Server, error) {
	socket, err := NewSocket(config.BindAddress)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Default
	}
	if trace == nil {
		trace = NewLogTrace(logger)
	}

	self := NewMember(socket.LocalAddr().String())

	s := &Server{
		self:       self,
		memberList: NewMemberList(),
		blacklist:  NewBlacklist(),
		socket:     socket,
		trace:      trace,
		logger:     logger,
		timing:     config.timingOrDefault(),
		inbox:      make(chan ackEnvelope, inboundQueueSize),
	}
	for _, m := range config.Persistent {
		m.Persistent = true
		s.memberList.Insert(m, Alive)
	}
	return s, nil
}

// Self returns the local member record.
func (s *Server) Self() Member {
	s.selfMu.RLock()
	defer s.selfMu.RUnlock()
	return s.self
}

// MemberList returns the shared membership table.
func (s *Server) MemberList() *MemberList { return s.memberList }

// Blacklist returns the shared blacklist set.
func (s *Server) Blacklist() *Blacklist { return s.blacklist }

// Socket returns the shared datagram endpoint.
func (s *Server) Socket() *Socket { return s.socket }

// Timing returns the configured phase budgets.
func (s *Server) Timing() Timing { return s.timing }

// Trace returns the shared trace sink.
func (s *Server) Trace() Trace { return s.trace }

// Logger returns the shared logger.
func (s *Server) Logger() logging.Logger { return s.logger }

// Rounds reports the monotonic probe-period counter.
func (s *Server) Rounds() int64 {
	return atomic.LoadInt64(&s.rounds)
}

// UpdateRound increments the round counter, wrapping to 0 on signed
// overflow; the counter is a liveness/progress signal, not required to be
// monotonic across the process's entire lifetime.
func (s *Server) UpdateRound() {
	next := atomic.AddInt64(&s.rounds, 1)
	if next < 0 {
		atomic.StoreInt64(&s.rounds, 0)
	}
}

// Pause halts both loops at their next iteration.
func (s *Server) Pause() {
	atomic.StoreUint32(&s.pause, 1)
}

// Unpause resumes both loops.
func (s *Server) Unpause() {
	atomic.StoreUint32(&s.pause, 0)
}

// Paused reports the current pause state.
func (s *Server) Paused() bool {
	return atomic.LoadUint32(&s.pause) == 1
}

// AddToBlacklist suppresses datagrams from and probes to addr.
func (s *Server) AddToBlacklist(addr string) {
	s.blacklist.Add(addr)
}

// CheckBlacklist reports whether addr is currently blacklisted.
func (s *Server) CheckBlacklist(addr string) bool {
	return s.blacklist.Contains(addr)
}

// Start launches the Receiver and Prober, each on its own goroutine. There
// is no graceful shutdown: both loops run for the life of the process,
// restarting is not supported, and a lock-holder panic is left to crash
// the goroutine, at which point the process is considered broken.
func (s *Server) Start() {
	go NewReceiver(s).Run()
	go NewProber(s).Run()
}

// Port reports the local UDP port the server is bound to.
func (s *Server) Port() int {
	return s.socket.LocalAddr().Port
}

func (s *Server) String() string {
	return fmt.Sprintf("%s@%d", s.Self().Id, s.Port())
}
