package mapper_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/KimNorgaard/go-sdl/mapper"
	"github.com/KimNorgaard/go-sdl/parser"
)

type Limits struct {
	Timeout time.Duration `sdl:"timeout"`
	Ratio   float64       `sdl:"ratio,omitempty"`
}

type Route struct {
	Path   string `sdl:",value"`
	Target string `sdl:"target,attr"`
}

type Server struct {
	Host    string          `sdl:",value"`
	Port    int             `sdl:"port,attr"`
	Secure  bool            `sdl:"secure,attr"`
	Aliases []string        `sdl:"alias,values"`
	Limits  *Limits         `sdl:"limits"`
	Routes  []Route         `sdl:"route"`
	Tags    []string        `sdl:"tags"`
	Started time.Time       `sdl:"started,omitempty"`
	Price   decimal.Decimal `sdl:"price,omitempty"`
	Weight  int
	Note    *string `sdl:"note"`
	Ignored string  `sdl:"-"`
	hidden  string
}

type Config struct {
	Name    string   `sdl:"name"`
	Servers []Server `sdl:"server"`
}

const configDoc = `name "prod"
server "web" "www" port=8080 secure=yes {
    limits {
        timeout 00:00:30
    }
    route "/" target="app"
    route "/static" target="cdn"
    tags "a" "b"
    Weight 3
    started 2024/01/02 03:04:05
    unknown 1
}
server "db" port=5432 secure=no
`

func TestDecode(t *testing.T) {
	root, err := parser.ParseString(configDoc)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, mapper.Decode(root, &cfg))

	require.Equal(t, "prod", cfg.Name)
	require.Len(t, cfg.Servers, 2)

	web := cfg.Servers[0]
	require.Equal(t, "web", web.Host)
	require.Equal(t, 8080, web.Port)
	require.True(t, web.Secure)
	require.Equal(t, []string{"web", "www"}, web.Aliases)
	require.Equal(t, &Limits{Timeout: 30 * time.Second}, web.Limits)
	require.Equal(t, []Route{{Path: "/", Target: "app"}, {Path: "/static", Target: "cdn"}}, web.Routes)
	require.Equal(t, []string{"a", "b"}, web.Tags)
	require.Equal(t, 3, web.Weight)
	require.True(t, web.Started.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
	require.Nil(t, web.Note)

	db := cfg.Servers[1]
	require.Equal(t, "db", db.Host)
	require.Equal(t, 5432, db.Port)
	require.False(t, db.Secure)
	require.Nil(t, db.Limits)
}

func TestDecodeErrors(t *testing.T) {
	root, err := parser.ParseString(`name 5`)
	require.NoError(t, err)

	var cfg Config
	err = mapper.Decode(root, &cfg)
	require.ErrorIs(t, err, errors.ErrType)
	require.ErrorContains(t, err, "field name")

	require.Error(t, mapper.Decode(root, cfg))
	require.Error(t, mapper.Decode(root, (*Config)(nil)))

	var n int
	require.Error(t, mapper.Decode(root, &n))

	var overflow struct {
		Small int8 `sdl:"small"`
	}
	root, err = parser.ParseString(`small 300`)
	require.NoError(t, err)
	require.Error(t, mapper.Decode(root, &overflow))
}

func TestEncode(t *testing.T) {
	note := "hello"
	cfg := Config{
		Name: "prod",
		Servers: []Server{
			{
				Host:    "web",
				Port:    8080,
				Secure:  true,
				Limits:  &Limits{Timeout: 30 * time.Second},
				Routes:  []Route{{Path: "/", Target: "app"}},
				Tags:    []string{"a"},
				Price:   decimal.RequireFromString("9.99"),
				Note:    &note,
				Ignored: "x",
				hidden:  "y",
			},
		},
	}
	root, err := mapper.Encode(&cfg)
	require.NoError(t, err)

	require.Equal(t, `name "prod"`, root.Child("name").String())
	server := root.Child("server")
	require.Equal(t, `server "web" port=8080 secure=yes`, server.String())

	var names []string
	for _, c := range server.Tags() {
		names = append(names, c.Name())
	}
	require.Equal(t, []string{"limits", "route", "tags", "price", "Weight", "note"}, names)
	require.Equal(t, "timeout 00:00:30", server.Child("limits").Child("timeout").String())
	require.Equal(t, `route "/" target="app"`, server.Child("route").String())
	require.Equal(t, "price 9.99bd", server.Child("price").String())
	require.Equal(t, "Weight 0", server.Child("Weight").String())
	require.Equal(t, `note "hello"`, server.Child("note").String())
	require.Nil(t, server.Child("started"))
	require.Nil(t, server.Child("limits").Child("ratio"))
}

type Job struct {
	Name    string        `sdl:",value"`
	Retries uint8         `sdl:"retries,attr"`
	Every   time.Duration `sdl:"every"`
	Args    []string      `sdl:"args,omitempty"`
	Steps   []Step        `sdl:"step"`
	Payload []byte        `sdl:"payload,omitempty"`
}

type Step struct {
	Cmd  string   `sdl:",value"`
	Cost float64  `sdl:"cost,attr"`
	Env  []string `sdl:"env,omitempty"`
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Job
	}{
		{"empty", Job{}},
		{"full", Job{
			Name:    "backup",
			Retries: 3,
			Every:   90 * time.Minute,
			Args:    []string{"-v", "--all"},
			Steps: []Step{
				{Cmd: "dump", Env: []string{"A=1"}, Cost: 1.5},
				{Cmd: "upload", Cost: 0.25},
			},
			Payload: []byte{0, 1, 2, 255},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := mapper.Encode(tt.in)
			require.NoError(t, err)

			var out Job
			require.NoError(t, mapper.Decode(root, &out))
			require.Equal(t, tt.in, out)
		})
	}
}

type link struct {
	Next *link `sdl:"next"`
}

func TestEncodeErrors(t *testing.T) {
	_, err := mapper.Encode(42)
	require.Error(t, err)

	_, err = mapper.Encode((*Job)(nil))
	require.Error(t, err)

	cycle := &link{}
	cycle.Next = cycle
	_, err = mapper.Encode(cycle)
	require.ErrorContains(t, err, "exceeded max depth")

	_, err = mapper.Encode(struct {
		M map[string]int `sdl:"m"`
	}{M: map[string]int{"a": 1}})
	require.ErrorIs(t, err, errors.ErrType)
}
