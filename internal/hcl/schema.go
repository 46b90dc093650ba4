package hcl

// fileRoot is the top-level structure of a fragsplice HCL file:
//
//	targets        = ["../clay.h"]
//	template_roots = ["${env.TEMPLATE_DIR}", "templates"]
//	suffix         = ".template.c"
//	marker         = "// __GENERATED__ template"
//	duplicates     = "error"
//
//	region {
//	  begin = "#pragma region generated"
//	  end   = "#pragma endregion"
//	}
type fileRoot struct {
	Targets       []string     `hcl:"targets,optional"`
	TemplateRoots []string     `hcl:"template_roots,optional"`
	Suffix        string       `hcl:"suffix,optional"`
	Marker        string       `hcl:"marker,optional"`
	Duplicates    string       `hcl:"duplicates,optional"`
	Region        *regionBlock `hcl:"region,block"`
}

// regionBlock overrides the delimiter lines wrapped around generated content.
type regionBlock struct {
	Begin string `hcl:"begin,optional"`
	End   string `hcl:"end,optional"`
}
