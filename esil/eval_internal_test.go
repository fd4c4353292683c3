package esil

import (
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parser", func() {
	var (
		mockCtrl *gomock.Controller
		opset    *MockOpset
		regset   *MockRegset
		p        *Parser
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		opset = NewMockOpset(mockCtrl)
		regset = NewMockRegset(mockCtrl)
		p = New(WithOpset(opset), WithRegset(regset))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("classifies operands through the register table", func() {
		opset.EXPECT().Op("rax").Return(Operator{}, false)
		regset.EXPECT().Register("rax").Return(uint8(64), true)

		Expect(p.Parse("rax")).To(Succeed())

		Expect(p.stack).To(HaveLen(1))
		Expect(p.stack[0].Location).To(Equal(Register))
		Expect(p.stack[0].Size).To(Equal(uint8(64)))
	})

	It("short circuits exact operator matches", func() {
		opset.EXPECT().Op("+").Return(Operator{Sym: "+", Arity: Binary}, true)

		Expect(p.Parse("+")).To(Succeed())

		Expect(p.Instructions()).To(BeEmpty())
		Expect(p.Diags()).To(HaveLen(1))
	})

	It("expands composites through basic operator lookups", func() {
		gomock.InOrder(
			opset.EXPECT().Op("a").Return(Operator{}, false),
			opset.EXPECT().Op("b").Return(Operator{}, false),
			opset.EXPECT().Op("+=").Return(Operator{}, false),
			opset.EXPECT().Op("+").Return(Operator{Sym: "+", Arity: Binary}, true),
		)
		regset.EXPECT().Register("a").Return(uint8(0), false)
		regset.EXPECT().Register("b").Return(uint8(0), false)

		Expect(p.Parse("a,b,+=")).To(Succeed())

		insts := p.Instructions()
		Expect(insts).To(HaveLen(2))
		Expect(insts[0].String()).To(Equal("tmp_1 = a + b"))
		Expect(insts[1].String()).To(Equal("a = tmp_1"))
	})

	It("aborts expansion on an unknown sub operator", func() {
		gomock.InOrder(
			opset.EXPECT().Op("x").Return(Operator{}, false),
			opset.EXPECT().Op("~=").Return(Operator{}, false),
			opset.EXPECT().Op("~").Return(Operator{}, false),
		)
		regset.EXPECT().Register("x").Return(uint8(0), false)

		err := p.Parse("x,~=,y")

		var oe *OpError
		Expect(errors.As(err, &oe)).To(BeTrue())
		Expect(oe.Pos).To(Equal(1))
		Expect(oe.Token).To(Equal("~="))
		Expect(oe.Sub).To(Equal("~"))
		// "y" is never classified: the call aborted before reaching it
	})
})
