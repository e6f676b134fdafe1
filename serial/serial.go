// Package serial drives a 16550-compatible UART through x86 port I/O. The
// kernel uses it as its trace sink: output there survives even when the
// screen does not.
package serial

// COM1 is the conventional I/O base of the first serial port.
const COM1 uint16 = 0x3F8

// Register offsets from the port base.
const (
	regData        = 0 // THR on write, RBR on read; divisor low with DLAB set
	regIntEnable   = 1 // divisor high with DLAB set
	regFIFOControl = 2
	regLineControl = 3
	regModemCtrl   = 4
	regLineStatus  = 5

	lineStatusTHREmpty = 1 << 5
	lineControlDLAB    = 1 << 7
)

// Port is one UART. It implements io.Writer and io.ByteWriter; a newline
// is sent as "\r\n" so terminals attached to the line return the carriage.
type Port struct {
	base uint16
	out  func(port uint16, v byte)
	in   func(port uint16) byte
}

// New returns the UART at base. It does not touch the hardware until Init.
func New(base uint16) *Port {
	return &Port{base: base, out: outb, in: inb}
}

// Init programs 38400 baud, 8 data bits, no parity, one stop bit, with
// interrupts off and the FIFOs enabled.
func (p *Port) Init() {
	p.out(p.base+regIntEnable, 0x00)
	p.out(p.base+regLineControl, lineControlDLAB)
	p.out(p.base+regData, 0x03) // divisor 3: 115200 / 3
	p.out(p.base+regIntEnable, 0x00)
	p.out(p.base+regLineControl, 0x03)
	p.out(p.base+regFIFOControl, 0xC7)
	p.out(p.base+regModemCtrl, 0x0B)
}

// WriteByte waits for the transmit holding register and sends b.
func (p *Port) WriteByte(b byte) error {
	if b == '\n' {
		p.put('\r')
	}
	p.put(b)
	return nil
}

// Write sends every byte of buf.
func (p *Port) Write(buf []byte) (int, error) {
	for _, b := range buf {
		_ = p.WriteByte(b)
	}
	return len(buf), nil
}

func (p *Port) put(b byte) {
	for p.in(p.base+regLineStatus)&lineStatusTHREmpty == 0 {
	}
	p.out(p.base+regData, b)
}
