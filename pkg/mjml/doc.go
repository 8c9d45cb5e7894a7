// Package mjml models MJML email documents as typed Go values and renders
// them as MJML markup.
//
// A document is a tree of nodes. Every element of the MJML dialect has a Go
// type (Text, Button, Section, Column, Hero, ...) with an Attrs struct
// holding one field per attribute. Zero values mean "not set" and are left
// out of the output, so a node only renders the attributes it was given.
//
// Nesting rules are enforced by the type system. Body and Wrapper accept
// SectionElement values (*Section, *Wrapper, *Hero), Section and Group
// accept ColumnElement values (*Column, *Group), and Column and Hero accept
// BodyElement values (content elements such as *Text or *Image). A Text in
// a Body does not compile.
//
// # Rendering
//
//	doc := &mjml.Document{
//	    Body: mjml.Body{
//	        Sections: []mjml.SectionElement{
//	            &mjml.Section{Columns: []mjml.ColumnElement{
//	                &mjml.Column{Content: []mjml.BodyElement{
//	                    &mjml.Text{Content: "Hello"},
//	                }},
//	            }},
//	        },
//	    },
//	}
//
//	out, err := mjml.RenderToString(doc)
//
// produces
//
//	<mjml>
//		<mj-body width="600px">
//			<mj-section>
//				<mj-column>
//					<mj-text>
//						Hello
//					</mj-text>
//				</mj-column>
//			</mj-section>
//		</mj-body>
//	</mjml>
//
// Output is indented with one tab per level. Elements without content are
// written as self-closing tags. Attribute order is fixed per element and
// map-based attributes (mj-all, mj-class) are sorted by key, so rendering
// the same tree twice yields identical bytes.
//
// Render streams to an io.Writer. The only error it returns is a write
// error, wrapped with ErrRenderFailed; output written before the failure is
// left in the writer. RenderToString renders into memory and returns the
// result only on success.
//
// # Configuration
//
// Renderer behavior can be tuned with options or loaded from the
// environment:
//
//	cfg, err := mjml.LoadConfig(".env")
//	if err != nil {
//	    return err
//	}
//	r := mjml.NewRenderer(mjml.WithConfig(cfg), mjml.WithLogger(log))
//
// Supported variables are MJML_BUFFER_SIZE (default 4096) and
// MJML_LOG_RENDERS (default false).
//
// # templ
//
// Document.Component and Renderer.Component return a templ.Component, and
// RenderHTML turns a templ component into a string usable as literal HTML
// content of a node.
//
// # Custom nodes
//
// RenderNode is exported so that nodes defined outside this package (for
// example inside an mj-raw block) can reuse the engine. Such nodes cannot
// be placed in slots, which only accept the element types of this package.
package mjml
