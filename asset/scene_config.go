package asset

// DefaultSceneConfig returns the default scene TOML configuration
const DefaultSceneConfig = `

# === Backdrop ===
image = "assets/scene1.jpg"
width = 96
height = 48
frame_delay_ms = 16


# === Dialog revealed one glyph per frame ===

[dialog]
text = "You are in a dark dungeon, what do you do?"
width = 82.0
height = 5.0
position = 35.0
x_pad = 1.0
y_pad = 1.0
color = "#e1e1e1"


# === Bouncing circle ===

[circle]
x = 0.0
y = 0.0
radius = 5.0
speed = 2.0
color = "#e1e1e1"


# === After the text is complete ===

[tail]
frames = 1000
linger = 200
`
