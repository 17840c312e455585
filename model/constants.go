package model

// StacVersion is the STAC spec version the generated items declare
const StacVersion = "1.0.0"

// SceneTimeFormat is the format used when writing scene datetimes into item
// properties
const SceneTimeFormat = "2006-01-02T15:04:05.999999999Z" // time.RFC3339Nano with a literal Z offset
