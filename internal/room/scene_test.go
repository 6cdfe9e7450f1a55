package room_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ndelcros/vitrine/internal/room"
)

var _ = Describe("Scene", func() {
	var s *room.Scene

	BeforeEach(func() {
		s = room.New("")
	})

	Describe("Build", func() {
		It("constructs the graph and the full light registry", func() {
			Expect(s.Build()).To(Succeed())
			Expect(s.Built()).To(BeTrue())
			Expect(s.NodeCount()).To(BeNumerically(">", 0))
			Expect(s.Lights().Complete()).To(BeTrue())
		})

		It("is a no-op on the second call", func() {
			Expect(s.Build()).To(Succeed())
			nodes := s.NodeCount()
			quads := s.QuadCount()
			Expect(s.Build()).To(Succeed())
			Expect(s.NodeCount()).To(Equal(nodes))
			Expect(s.QuadCount()).To(Equal(quads))
		})

		It("starts every light at its bright preset", func() {
			Expect(s.Build()).To(Succeed())
			reg := s.Lights()
			Expect(reg.Get(room.Ambient).Intensity).To(Equal(room.AmbientOn))
			Expect(reg.Get(room.Desk).Intensity).To(Equal(room.DeskOn))
			Expect(reg.Get(room.Monitor).Intensity).To(Equal(room.MonitorOn))
			Expect(reg.Get(room.LED).Intensity).To(Equal(room.LEDOn))
			Expect(reg.Get(room.Ceiling).Intensity).To(Equal(room.CeilingOn))
			Expect(reg.Get(room.Fill).Intensity).To(Equal(room.FillOn))
		})

		It("leaves posters untextured when the asset dir is missing", func() {
			s = room.New("testdata/does-not-exist")
			Expect(s.Build()).To(Succeed())
			for _, n := range s.Nodes() {
				for _, q := range n.Quads {
					Expect(q.Texture).To(BeNil())
				}
			}
		})
	})

	Describe("ToggleLights", func() {
		It("is a no-op before Build", func() {
			Expect(s.ToggleLights()).To(BeTrue())
			Expect(s.LightsOn()).To(BeTrue())
		})

		Context("on a built scene", func() {
			BeforeEach(func() {
				Expect(s.Build()).To(Succeed())
			})

			It("writes the dark presets to the switched roles", func() {
				Expect(s.ToggleLights()).To(BeFalse())
				reg := s.Lights()
				Expect(reg.Get(room.Ambient).Intensity).To(Equal(room.AmbientOff))
				Expect(reg.Get(room.Desk).Intensity).To(Equal(room.DeskOff))
				Expect(reg.Get(room.Ceiling).Intensity).To(Equal(room.CeilingOff))
				Expect(reg.Get(room.Fill).Intensity).To(Equal(room.FillOff))
			})

			It("keeps monitor and led glowing when off", func() {
				s.ToggleLights()
				reg := s.Lights()
				Expect(reg.Get(room.Monitor).Intensity).To(Equal(room.MonitorOn))
				Expect(reg.Get(room.LED).Intensity).To(Equal(room.LEDOn))
			})

			It("restores the bright presets exactly after a round trip", func() {
				before := make(map[room.Role]float64)
				for _, l := range s.Lights().All() {
					before[l.Role] = l.Intensity
				}
				Expect(s.ToggleLights()).To(BeFalse())
				Expect(s.ToggleLights()).To(BeTrue())
				for _, l := range s.Lights().All() {
					Expect(l.Intensity).To(Equal(before[l.Role]), "role %s", l.Role)
				}
			})
		})
	})

	Describe("Dispose", func() {
		It("empties the scene and is idempotent", func() {
			Expect(s.Build()).To(Succeed())
			s.Dispose()
			Expect(s.Disposed()).To(BeTrue())
			Expect(s.NodeCount()).To(BeZero())
			s.Dispose()
			Expect(s.Disposed()).To(BeTrue())
		})

		It("refuses a rebuild", func() {
			Expect(s.Build()).To(Succeed())
			s.Dispose()
			Expect(s.Build()).To(MatchError(room.ErrDisposed))
			Expect(s.NodeCount()).To(BeZero())
		})

		It("makes the toggle a no-op", func() {
			Expect(s.Build()).To(Succeed())
			s.Dispose()
			state := s.LightsOn()
			Expect(s.ToggleLights()).To(Equal(state))
		})
	})
})

var _ = Describe("Registry", func() {
	It("is incomplete until every role is set", func() {
		var reg room.Registry
		Expect(reg.Complete()).To(BeFalse())
		Expect(reg.All()).To(BeEmpty())
	})

	It("rejects out-of-range roles", func() {
		var reg room.Registry
		Expect(reg.Get(room.Role(-1))).To(BeNil())
		Expect(reg.Get(room.Role(99))).To(BeNil())
	})
})

var _ = Describe("Camera", func() {
	It("projects the origin to the surface center", func() {
		c := room.NewCamera()
		c.RotX, c.RotY = 0, 0
		x, y, _, ok := c.Project(room.Vec3{}, 800, 600)
		Expect(ok).To(BeTrue())
		Expect(x).To(BeNumerically("~", 400, 1e-9))
		Expect(y).To(BeNumerically("~", 300, 1e-9))
	})

	It("culls points behind the near plane", func() {
		c := room.NewCamera()
		c.RotX, c.RotY = 0, 0
		_, _, _, ok := c.Project(room.Vec3{Z: c.Distance}, 800, 600)
		Expect(ok).To(BeFalse())
	})

	It("clamps the orbit pitch", func() {
		c := room.NewCamera()
		c.Orbit(0, 10)
		Expect(c.RotX).To(BeNumerically("<=", 1.2))
		c.Orbit(0, -20)
		Expect(c.RotX).To(BeNumerically(">=", -1.2))
	})
})
