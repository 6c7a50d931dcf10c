package customtranslator

import (
	"fmt"
	"net/url"
)

const (
	workspacesPath = "workspaces"
	projectsPath   = "projects"
	documentsPath  = "documents"
)

func WorkspacesPath() string {
	return workspacesPath
}

func ProjectsPath(workspaceID string, pageIndex int) string {
	return pagedPath(projectsPath, workspaceID, pageIndex)
}

func DocumentsPath(workspaceID string, pageIndex int) string {
	return pagedPath(documentsPath, workspaceID, pageIndex)
}

// pagedPath keeps workspaceId before pageIndex, url.Values would sort them
func pagedPath(resource, workspaceID string, pageIndex int) string {
	return fmt.Sprintf("%s?workspaceId=%s&pageIndex=%d", resource, url.QueryEscape(workspaceID), pageIndex)
}
