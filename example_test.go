package edn_test

import (
	"fmt"
	"log"

	"github.com/chaisql/edn"
	"github.com/chaisql/edn/types"
)

func Example() {
	v, err := edn.Decode(`{:db/id 17592186045417, :person/name "Peter", :person/tags #{:admin}}`)
	if err != nil {
		log.Fatal(err)
	}

	m := types.AsMap(v)
	name, _ := m.GetKeyword("person/name")
	fmt.Println(types.AsString(name))

	id, _ := m.GetKeyword(":db/id")
	fmt.Println(types.AsInt64(id))

	// Output:
	// Peter
	// 17592186045417
}

func ExampleDecodeRows() {
	rows, err := edn.DecodeRows(`[[17592186045417 "Peter"] [17592186045418 "Paul"]]`)
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range rows {
		fmt.Println(row[0], row[1])
	}

	// Output:
	// 17592186045417 "Peter"
	// 17592186045418 "Paul"
}

func ExampleDecodeTxReport() {
	r, err := edn.DecodeTxReport(`{:db-after {:basis-t 1000}, :tempids {-9223350046623220292 17592186045417}}`)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(r.TempIDs())
	fmt.Println(r.TxData() == nil)

	// Output:
	// {-9223350046623220292 17592186045417}
	// true
}

func ExampleNewDecoder() {
	dec := edn.NewDecoder(`:first [2 3] #inst "2014-12-01T15:27:26.632-00:00"`, nil)

	for {
		v, err := dec.Decode()
		if err != nil {
			break
		}
		fmt.Println(v.Type(), v)
	}

	// Output:
	// keyword :first
	// sequence [2 3]
	// instant #inst "2014-12-01T15:27:26.632Z"
}
