// Package cli implements the blogkeeper operator console.
//
// With no positional arguments the App runs an interactive loop:
//
//	blog> help
//	blog> login admin@example.com
//	blog (admin@example.com)> blogs
//
// Anything left on the command line after the flags is executed as a single
// command instead, which makes the binary scriptable:
//
//	blogcli -a http://localhost:3000 -token $TOKEN delete 12
//
// Commands:
//
//	health                          check the server is up
//	signup [username email [role]]  create an account (password is prompted)
//	login [email]                   obtain and keep an access token
//	logout                          forget the token
//	token                           print the current token
//	blogs                           list posts
//	blog <id>                       show one post
//	create                          create a post (prompts for fields)
//	assign <blogId> <editorId>      set the editor of a post
//	edit <blogId>                   change title and/or body
//	delete <blogId>                 delete a post and its comments
//	comments <blogId>               list comments of a post
//	comment <blogId> [text...]      post a comment
//	uncomment <blogId> <commentId>  delete a comment
package cli
