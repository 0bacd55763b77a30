package srp

// PayloadSize is the fixed application payload length carried by every
// packet, data and ACK alike.
const PayloadSize = 20

// NotInUse fills header fields that carry no meaning for a given packet:
// Ack on data packets, Seq on pure ACKs.
const NotInUse = -1

// Message is one fixed-size unit handed to the Sender by the application.
type Message struct {
	Data [PayloadSize]byte
}

// Packet is the wire unit exchanged between the endpoints.
type Packet struct {
	// Seq is the sequence number of a data packet, NotInUse on ACKs.
	Seq int

	// Ack is the acknowledged sequence number, NotInUse on data packets.
	Ack int

	// Payload is the application data; zeroed on ACKs.
	Payload [PayloadSize]byte

	// Checksum is the additive checksum over Seq, Ack, and Payload.
	Checksum int
}

// Checksum computes the additive checksum over header and payload.
func Checksum(p Packet) int {
	sum := p.Seq + p.Ack
	for i := 0; i < PayloadSize; i++ {
		sum += int(p.Payload[i])
	}
	return sum
}

// Corrupted reports whether the stored checksum disagrees with the content.
func (p Packet) Corrupted() bool {
	return p.Checksum != Checksum(p)
}

// seal stamps the checksum after all other fields are final.
func (p *Packet) seal() {
	p.Checksum = Checksum(*p)
}
