/*
Package sdl parses and encodes SDL, a declarative tag-tree markup. Every
statement introduces a tag carrying positional typed values and named typed
attributes, optionally followed by a brace-delimited block of child tags:

	database {
	    connection "pdo+sqlite://@APP_DATA/master.db" charset="UTF-8"
	}

Values are typed literals: strings, raw strings, characters, 32 and 64 bit
integers, floats, doubles, arbitrary precision decimals, booleans, null,
base64 binary blobs, dates, datetimes and timespans. The literal package
holds the types and the registry that classifies source text.

1. Reading Documents

Parse, ParseString, ParseReader and ParseFile return the nameless root tag of
the document. The tree is made of *ast.Tag and *ast.Comment nodes.

	root, err := sdl.ParseString("size 1024 unit=\"KB\"")
	if err != nil {
		// handle error
	}
	size := root.Child("size")
	var n int
	if err := size.ScanValues(&n); err != nil {
		// handle error
	}

Any error aborts the whole document; the errors package describes the
error kinds. Datetime literals carrying a timezone are rejected unless the
IgnoreTimezone option is given.

2. Building and Writing Documents

Trees can be built with ast.NewRoot and (*ast.Tag).CreateChild and are
written with Marshal or an Encoder. Children are indented by four spaces
unless the Indent option says otherwise.

	root := ast.NewRoot()
	db, _ := root.CreateChild("database")
	conn, _ := db.CreateChild("connection", "pdo+sqlite://@APP_DATA/master.db")
	_ = conn.SetNativeAttribute("charset", "UTF-8")

	out, err := sdl.Marshal(root)

The encoding of any tree parses back into an equal tree. Types that know how
to build themselves into a tag implement Marshaler.

3. Structs

Marshal and Unmarshal also map Go structs to tags and back, driven by sdl
struct tags:

	type Service struct {
		Name  string   `sdl:",value"`
		Port  int      `sdl:"port,attr"`
		Hosts []string `sdl:"hosts"`
	}

	var cfg struct {
		Services []Service `sdl:"service"`
	}
	err := sdl.Unmarshal(data, &cfg)

See package mapper for the rules. Types implementing Unmarshaler receive the
parsed root tag instead.
*/
package sdl
