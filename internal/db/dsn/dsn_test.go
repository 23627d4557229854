package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uefisettings/uefisettings/internal/config"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		db   config.DB
		want string
	}{
		{
			name: "with extras",
			db: config.DB{
				User: "ocs", Password: "secret", Host: "127.0.0.1", Port: 3306, Name: "ocsweb",
				Extras: "charset=utf8mb4&parseTime=True",
			},
			want: "ocs:secret@tcp(127.0.0.1:3306)/ocsweb?charset=utf8mb4&parseTime=True",
		},
		{
			name: "without extras",
			db:   config.DB{User: "ocs", Password: "secret", Host: "db", Port: 3306, Name: "ocsweb"},
			want: "ocs:secret@tcp(db:3306)/ocsweb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Create(&config.Config{DB: tt.db}))
		})
	}
}

func TestCreatePostgres(t *testing.T) {
	tests := []struct {
		name string
		db   config.DB
		want string
	}{
		{
			name: "plain values",
			db: config.DB{
				User: "ocs", Password: "secret", Host: "localhost", Port: 5432, Name: "ocsweb",
				Extras: "sslmode=disable",
			},
			want: "host=localhost port=5432 user=ocs password=secret dbname=ocsweb sslmode=disable",
		},
		{
			name: "quoted values",
			db:   config.DB{User: "ocs", Password: "it's a secret", Host: "localhost", Port: 5432, Name: "ocsweb"},
			want: `host=localhost port=5432 user=ocs password='it\'s a secret' dbname=ocsweb`,
		},
		{
			name: "empty password",
			db:   config.DB{User: "ocs", Host: "localhost", Port: 5432, Name: "ocsweb"},
			want: "host=localhost port=5432 user=ocs password='' dbname=ocsweb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreatePostgres(&config.Config{DB: tt.db}))
		})
	}
}
