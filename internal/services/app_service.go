package services

// ProjectInfoSource is satisfied by the Supabase wrapper.
type ProjectInfoSource interface {
	ProjectURL() string
}

type SupabaseInfo struct {
	ProjectURL string `json:"projectUrl"`
}

type AppService interface {
	Hello() string
	SupabaseInfo() SupabaseInfo
}

type appService struct {
	supabase ProjectInfoSource
}

func NewAppService(supabase ProjectInfoSource) AppService {
	return &appService{supabase: supabase}
}

func (s *appService) Hello() string { return "Hello World!" }

func (s *appService) SupabaseInfo() SupabaseInfo {
	return SupabaseInfo{ProjectURL: s.supabase.ProjectURL()}
}
