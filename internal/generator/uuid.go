package generator

import "github.com/google/uuid"

// UUIDv4 returns a random RFC 4122 version 4 UUID in canonical lowercase form.
func (g *Generator) UUIDv4() string {
	id, err := uuid.NewRandomFromReader(sourceReader{src: g.src})
	if err != nil {
		// sourceReader always fills the buffer.
		panic(err)
	}
	return id.String()
}
