package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFile(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		location string
		want     File
	}{
		{
			name:     "root file",
			folder:   "/work/project",
			location: "/work/project/docker-compose.yml",
			want:     File{Label: "docker-compose.yml", Dir: ".", Path: "docker-compose.yml"},
		},
		{
			name:     "nested file",
			folder:   "/work/project",
			location: "/work/project/deploy/prod/docker-compose.override.yml",
			want: File{
				Label: "deploy/prod/docker-compose.override.yml",
				Dir:   "deploy/prod",
				Path:  "deploy/prod/docker-compose.override.yml",
			},
		},
		{
			name:     "outside folder keeps absolute path",
			folder:   "/work/project",
			location: "/shared/docker-compose.yml",
			want:     File{Label: "/shared/docker-compose.yml", Dir: "/shared", Path: "/shared/docker-compose.yml"},
		},
		{
			name:     "sibling with common prefix is outside",
			folder:   "/work/project",
			location: "/work/project-b/docker-compose.yml",
			want:     File{Label: "/work/project-b/docker-compose.yml", Dir: "/work/project-b", Path: "/work/project-b/docker-compose.yml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFile(tt.folder, tt.location))
		})
	}
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "/work/project/docker-compose.yml", Location("/work/project", "docker-compose.yml"))
	assert.Equal(t, "/work/project/sub/docker-compose.yml", Location("/work/project", " sub/docker-compose.yml "))
	assert.Equal(t, "/etc/compose/base.yml", Location("/work/project", "/etc/compose/base.yml"))
	assert.Equal(t, "/work/project/docker-compose.yml", Location("/work/project", "file:///work/project/docker-compose.yml"))
	assert.Equal(t, "/work/my project/a b.yml", Location("/work/project", "file:///work/my%20project/a%20b.yml"))
}

func TestFileFromRef(t *testing.T) {
	f := FileFromRef("/work/project", "file:///work/project/compose/docker-compose.yml")
	assert.Equal(t, "compose/docker-compose.yml", f.Path)
	assert.Equal(t, "compose", f.Dir)
}
