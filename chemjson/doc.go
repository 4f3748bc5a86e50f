package chemjson

//Package chemjson implements serialization and unserialization of
//goMol graphs and geometries. It's planned use is the communication of goMol
//programs with other, independent programs, which can be written in
//languages other than Go, as long as those languages can read and write JSON.
//It is also the storage format of the catalog package.
//Streams carry one JSON document per line, so several graphs or geometries
//can be sent through the same pipe.
