// Command tokenstream-demo exercises a full encode/decode round trip,
// including a nested record, a container field, and whole-stream archive
// compression, for manual inspection of the wire bytes it produces.
package main

import (
	"fmt"
	"log"

	"github.com/scottkmaxwell/tokenstream"
	"github.com/scottkmaxwell/tokenstream/archive"
	"github.com/scottkmaxwell/tokenstream/schema"
	"github.com/scottkmaxwell/tokenstream/stream"
	"github.com/scottkmaxwell/tokenstream/tokenname"
)

type address struct {
	City string
	Zip  string
}

type person struct {
	Name   string
	Age    uint64
	Scores []uint64
	Home   address
}

func main() {
	fmt.Println("TokenStream Demo")
	fmt.Println("================")

	addrSchema, err := schema.NewMap[address](
		schema.StringField(tokenname.Of("address.city"), func(a *address) *string { return &a.City }, ""),
		schema.StringField(tokenname.Of("address.zip"), func(a *address) *string { return &a.Zip }, ""),
	)
	if err != nil {
		log.Fatal(err)
	}

	personSchema, err := schema.NewMap[person](
		schema.StringField(tokenname.Of("person.name"), func(p *person) *string { return &p.Name }, ""),
		schema.Uint64Field(tokenname.Of("person.age"), func(p *person) *uint64 { return &p.Age }, 0),
		schema.SliceField(tokenname.Of("person.scores"),
			func(p *person) *[]uint64 { return &p.Scores },
			(*stream.Reader).GetUint64,
			func(w *stream.Writer, v uint64) error { return w.PutUint64(v, 0) },
		),
		schema.RecordField(tokenname.Of("person.home"), func(p *person) *address { return &p.Home }, addrSchema, false),
	)
	if err != nil {
		log.Fatal(err)
	}

	in := person{
		Name:   "Ada Lovelace",
		Age:    36,
		Scores: []uint64{98, 87, 91},
		Home:   address{City: "London", Zip: "W1"},
	}

	fmt.Println("\n1. Plain round trip:")
	plain, err := tokenstream.Marshal(personSchema, &in)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("   encoded %d bytes\n", len(plain))

	var out person
	if err := tokenstream.Unmarshal(personSchema, plain, &out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("   decoded: %+v\n", out)

	fmt.Println("\n2. Archived round trip (S2-compressed, checksummed):")
	packed, err := tokenstream.MarshalArchive(personSchema, &in, archive.TagS2, archive.S2Codec{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("   archived %d bytes (raw was %d)\n", len(packed), len(plain))

	var fromArchive person
	if err := tokenstream.UnmarshalArchive(personSchema, packed, &fromArchive); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("   decoded: %+v\n", fromArchive)
}
