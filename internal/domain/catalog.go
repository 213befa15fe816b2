package domain

// Program is one of the educational programs a student can register for.
type Program struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	AgeRange    string `yaml:"age_range" json:"age_range"`
	Description string `yaml:"description" json:"description"`
	Duration    string `yaml:"duration" json:"duration"`
	Icon        string `yaml:"icon" json:"icon"`
}

// ClassSession is a weekly class in the schedule.
type ClassSession struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Day         string `yaml:"day" json:"day"`
	Time        string `yaml:"time" json:"time"`
	Teacher     string `yaml:"teacher" json:"teacher"`
	Program     string `yaml:"program" json:"program"`
	MeetLink    string `yaml:"meet_link" json:"meet_link"`
	Description string `yaml:"description" json:"description"`
	Level       string `yaml:"level" json:"level"`
}

// Member is a person in the organisational structure.
type Member struct {
	Name           string `yaml:"name" json:"name"`
	Position       string `yaml:"position" json:"position"`
	Description    string `yaml:"description,omitempty" json:"description,omitempty"`
	Email          string `yaml:"email,omitempty" json:"email,omitempty"`
	Phone          string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Image          string `yaml:"image,omitempty" json:"image,omitempty"`
	Specialization string `yaml:"specialization,omitempty" json:"specialization,omitempty"`
	Experience     string `yaml:"experience,omitempty" json:"experience,omitempty"`
}

// Structure groups the members of the institution by role.
type Structure struct {
	Leadership     []Member `yaml:"leadership" json:"leadership"`
	Administration []Member `yaml:"administration" json:"administration"`
	Teachers       []Member `yaml:"teachers" json:"teachers"`
	Technical      []Member `yaml:"technical" json:"technical"`
}

// Statistics are the headline numbers shown on the home page.
type Statistics struct {
	Students  int `yaml:"students" json:"students"`
	Graduates int `yaml:"graduates" json:"graduates"`
	Teachers  int `yaml:"teachers" json:"teachers"`
	Programs  int `yaml:"programs" json:"programs"`
	Years     int `yaml:"years" json:"years"`
}

// FAQ is a question/answer pair on the home page.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}
