package entity

// LogMessage is a single log record written to the database log collection.
type LogMessage struct {
	Time    string `json:"time" bson:"time"`
	Level   string `json:"level" bson:"level"`
	Feature string `json:"feature" bson:"feature"`
	Text    string `json:"text" bson:"text"`
}

func (l *LogMessage) DataType() string {
	return "log-message"
}
