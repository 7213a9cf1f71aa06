package glyph

// table holds 12x12 GIF images, base64 encoded, one per token.
var table = map[string]string{
	"0":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIXBIKpph38TkTQUQmztJN3rl1iF3qVVQAAOw==",
	"1":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIYBBKGm9eM1JtSsupwdDfzpUHh6G2mWEIFADs=",
	"2":   "R0lGODlhDAAMAPAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAAAIZBIJpuMkXmmtSQXrz21F3joHQ5JGc+TlBAQA7",
	"3":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIZjANguYp+XptRWnYdxvVs6Gki9ZGjFZVVAQA7",
	"4":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIYBBKGm8eNFJxSsurwo9ndvmlcBE4fGToFADs=",
	"5":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIZBIJpuMkXmoTNzYcjtHSr7mSXJoJkOHJIAQA7",
	"6":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIZjANguXoNkWNPRoqne5TraoXZ9YnbMVZUAQA7",
	"7":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIYBBKGy3mOFJxSsvrswjG/6zVUOHYi16AFADs=",
	"8":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIZBIJpqRf7HJyOUXRZxLI2rm1iRnqgaHVIAQA7",
	"9":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIYjANgeceo4IqvvUtzm3zjLYWfqIVWeXYFADs=",
	"-":   "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIYjANwe8mooHGMLorj1U/2yYGil43bZx4FADs=",
	"CC1": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIYjANwl+uooGmOLoqjfTVy2U3aKJbgtz0FADs=",
	"CC2": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIXjG8AuejKokMw1Nvq3EdvLIFWRnISVwAAOw==",
	"CC3": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIZBIKpahv9TkTQUQlr0tdu6WXY2E0Ld4JJAQA7",
	"CC4": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIYjG8AmMvaIkMw1Otonm9PLIGWU2ncUR4FADs=",
	"CC5": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIXBIKpm4YeoDys0Vntoxn2C25ixFWeSRUAOw==",
	"CC6": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIXjANwy5auUHyMLopjg81uz0lhFm6ieRYAOw==",
	"CC7": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIXjG8AyKG5XHzt0DtjlRt2DmJeqFXURhUAOw==",
	"CC8": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIUBBKGmtfrmIwU2ofn1bn27XFi6BUAOw==",
	"STC": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIZjANwe2nOIFyTPYUwxfXa/TWcJnrRaElYAQA7",
	"SPC": "R0lGODdhDAAMAIAAAAAAAP///yH5BAAAAAAALAAAAAAMAAwAQAIZjANwl9aLVITwrWeZzJRXeW2g5ozl+aFLAQA7",
}
